package main

import (
	"os"

	"github.com/petar-dambovaliev/soundbytes/cmd"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
	cmd.Execute()
}
