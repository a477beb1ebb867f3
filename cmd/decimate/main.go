// Command decimate downsamples CSV series and reads and writes decimate snapshots.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("decimate failed")
	}
}
