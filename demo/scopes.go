package main

import (
	"sync"
	"time"

	"github.com/sellerlabs/logprefix"
)

func main() {
	log := logprefix.New()

	log.Info("starting")

	log.Scope("fetch", func(log logprefix.Logger) error {
		log.Info("resolving peers")

		return log.Scope("peer-7", func(log logprefix.Logger) error {
			log.Info("handshake ok")
			return nil
		})
	})

	var wg sync.WaitGroup
	for _, name := range []string{"alpha", "beta"} {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Scope(name, func(log logprefix.Logger) error {
				for i := 0; i < 3; i++ {
					log.Info("working")
					<-time.NewTimer(25 * time.Millisecond).C
				}
				return nil
			})
		}()
	}
	wg.Wait()

	log.Info("done")
}
