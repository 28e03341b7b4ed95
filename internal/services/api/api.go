// Package api provides the HTTP API for the application
package api

import (
	"copyquant/internal/platform/config"
	"copyquant/internal/platform/logger"
	phttp "copyquant/internal/platform/net/http"

	"copyquant/internal/modkit"
	"copyquant/internal/modkit/httpkit"
	"copyquant/internal/modkit/module"
	"copyquant/internal/modkit/swaggerkit"

	metamod "copyquant/internal/services/api/meta/module"
	quantmod "copyquant/internal/services/api/quant/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}

	mods := []module.Module{
		metamod.New(deps),
		quantmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
