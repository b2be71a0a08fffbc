package pogreb

import (
	"context"

	"github.com/akrylysov/pogreb"
	"github.com/akrylysov/pogreb/fs"
	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.uber.org/fx"
)

type Pogreb struct {
	PostingMapper  *pogreb.DB
	DocumentMapper *pogreb.DB
}

func Init(lifecycle fx.Lifecycle, config *config.Config) *Pogreb {
	p, err := Open(config)
	if err != nil {
		gut.Fatal("unable to open pogreb", err)
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context context.Context) error {
			return nil
		},
		OnStop: func(context context.Context) error {
			return p.Close()
		},
	})

	return p
}

// Open opens both mappers, in memory when configured so.
func Open(config *config.Config) (*Pogreb, error) {
	options := &pogreb.Options{
		BackgroundSyncInterval:       0,
		BackgroundCompactionInterval: 0,
		FileSystem:                   fs.OSMMap,
	}
	if config.PogrebInMemory != nil && *config.PogrebInMemory {
		options.FileSystem = fs.Mem
	}

	p := new(Pogreb)

	var err error
	p.PostingMapper, err = pogreb.Open(*config.PogrebPostingMapper, options)
	if err != nil {
		return nil, err
	}

	p.DocumentMapper, err = pogreb.Open(*config.PogrebDocumentMapper, options)
	if err != nil {
		_ = p.PostingMapper.Close()
		return nil, err
	}

	return p, nil
}

func (r *Pogreb) Close() error {
	postingErr := r.PostingMapper.Close()
	documentErr := r.DocumentMapper.Close()
	if postingErr != nil {
		return postingErr
	}
	return documentErr
}
