package main

import (
	"os"

	"github.com/YKarmar/AdmissionsDashboard/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
