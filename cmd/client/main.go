// Command go-employee-client is a command-line client for the employee
// keeper REST API.
//
// The bearer token printed by "login" is read back from the --token flag or
// the EMPLOYEE_KEEPER_TOKEN environment variable by the employee commands.
package main

import (
	"os"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-employee-client")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(buildInfo, log).Execute(); err != nil {
		os.Exit(1)
	}
}
