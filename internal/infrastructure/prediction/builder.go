package prediction

import (
	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/database/redis"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// BuildChain assembles the fallback chain from configuration.  Remote sources
// are wrapped with the prediction cache when one is supplied; local and demo
// sources are cheap enough to skip caching.  Disabled remote sources are
// dropped from the chain with a log note rather than an error.
func BuildChain(cfg config.SourcesConfig, cache redis.Cache, log logging.Logger, observer Observer) (*Chain, error) {
	var sources []Source

	// The metrics collector implements both observer contracts.
	cacheObserver, _ := observer.(CacheObserver)

	for _, name := range cfg.Chain {
		var src Source
		switch mtypes.SourceName(name) {
		case mtypes.SourceADMETLab3:
			if !cfg.ADMETLab3.Enabled {
				log.Info("source disabled, skipping", logging.String("source", name))
				continue
			}
			src = NewADMETLabClient(mtypes.SourceADMETLab3, cfg.ADMETLab3.URL, cfg.ADMETLab3.Timeout, log)
		case mtypes.SourceADMETLab2:
			if !cfg.ADMETLab2.Enabled {
				log.Info("source disabled, skipping", logging.String("source", name))
				continue
			}
			src = NewADMETLabClient(mtypes.SourceADMETLab2, cfg.ADMETLab2.URL, cfg.ADMETLab2.Timeout, log)
		case mtypes.SourcePubChem:
			if !cfg.PubChem.Enabled {
				log.Info("source disabled, skipping", logging.String("source", name))
				continue
			}
			src = NewPubChemClient(cfg.PubChem.URL, cfg.PubChem.Timeout, log)
		case mtypes.SourceLocal:
			src = NewLocalSource()
		case mtypes.SourceDemo:
			src = NewDemoSource()
		default:
			return nil, errors.Newf(errors.ErrCodeValidation, "unknown data source %q in chain", name)
		}

		if cache != nil && isRemote(src.Name()) {
			src = NewCachedSource(src, cache, cfg.CacheTTL, log, cacheObserver)
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "source chain is empty after applying enable flags")
	}

	return NewChain(sources, log, observer), nil
}

func isRemote(name mtypes.SourceName) bool {
	switch name {
	case mtypes.SourceADMETLab3, mtypes.SourceADMETLab2, mtypes.SourcePubChem:
		return true
	}
	return false
}
