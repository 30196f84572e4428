package wire

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/ZJAVED2012/PAKNet-AI/internal/blueprint"
	"github.com/ZJAVED2012/PAKNet-AI/internal/config"
	"github.com/ZJAVED2012/PAKNet-AI/internal/history"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg   *viper.Viper
	Log   *log.Logger
	Store history.Store

	genOnce sync.Once
	gen     *blueprint.Service
	genErr  error
}

// BuildApp wires dependencies with the provided config.
//
// The history store degrades silently: if the on-disk DB cannot be opened
// or read, the failure is logged and the session starts with an empty
// in-memory history. The generation client is built lazily so commands that
// never generate (history, export, copy) work without a credential.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "paknet ", log.LstdFlags)

	limit := v.GetInt("history.limit")
	store, err := history.OpenSQLite(ctx, config.ResolveDBPath(v), limit)
	if err != nil {
		logger.Printf("history store unavailable, starting empty: %v", err)
		store = history.NewMem(limit)
	}

	return &App{Cfg: v, Log: logger, Store: store}, nil
}

// Generator returns the generation service, building the client on first use.
func (a *App) Generator() (*blueprint.Service, error) {
	a.genOnce.Do(func() {
		client, err := newClient(a.Cfg)
		if err != nil {
			a.genErr = err
			return
		}
		params := blueprint.SamplingParams{
			Temperature:     a.Cfg.GetFloat64("gen.temperature"),
			TopP:            a.Cfg.GetFloat64("gen.top_p"),
			ReasoningEffort: a.Cfg.GetString("gen.reasoning_effort"),
		}
		a.gen = blueprint.NewService(client, params, a.Log)
	})
	return a.gen, a.genErr
}

// Close releases held resources.
func (a *App) Close() error {
	return a.Store.Close()
}

func newClient(v *viper.Viper) (blueprint.Client, error) {
	switch provider := v.GetString("api.provider"); provider {
	case "mock":
		return blueprint.MockClient{}, nil
	case "openai":
		return blueprint.NewOpenAIClient(blueprint.ClientConfig{
			APIKey:  v.GetString("api.key"),
			BaseURL: v.GetString("api.base_url"),
			Model:   v.GetString("api.model"),
		})
	default:
		return nil, fmt.Errorf("unknown api.provider %q", provider)
	}
}
