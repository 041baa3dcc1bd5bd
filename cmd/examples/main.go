/*
to run these scripts, do:

	go build .
	./examples script...
*/
package main

import "flag"

const (
	metrics            = "metrics"
	multiplicative     = "multiplicative"
	additiveSequential = "additive-sequential"
	additiveBrokered   = "additive-brokered"
	dh                 = "dh"
)

func main() {
	flag.Parse()
	for _, script := range flag.Args() {
		switch script {
		case metrics:
			runMetrics()
		case multiplicative:
			runMultiplicative()
		case additiveSequential:
			runAdditiveSequential()
		case additiveBrokered:
			runAdditiveBrokered()
		case dh:
			runDH()
		}
	}
}
