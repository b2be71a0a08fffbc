package main

import (
	"errors"
	"log"

	pogreb2 "github.com/akrylysov/pogreb"
	"go.scnd.dev/open/syrup/posting/lib/common/big5"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/common/fxo"
	"go.scnd.dev/open/syrup/posting/lib/common/pogreb"
	"go.scnd.dev/open/syrup/posting/lib/util"
	"go.uber.org/fx"
)

func main() { // * main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			pogreb.Init,
		),
		fx.Invoke(
			invoke,
		),
	).Run()
}

func invoke(shutdowner fx.Shutdowner, pogreb *pogreb.Pogreb) {
	it := pogreb.PostingMapper.Items()
	for {
		key, val, err := it.Next()
		if errors.Is(err, pogreb2.ErrIterationDone) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		frames, err := util.MapperPayloadExtract(val)
		if err != nil {
			log.Printf("%s corrupt: %v", big5.Printable(key), err)
			continue
		}
		for _, frame := range frames {
			if len(frame) < 4 {
				continue
			}
			log.Printf("%s doc=%d %x", big5.Printable(key), util.BytesToUint32(frame[:4]), frame[4:])
		}
	}

	_ = shutdowner.Shutdown()
}
