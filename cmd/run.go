package cmd

import (
	"fmt"
	"os"

	"geotutor/internal/advisor"
	"geotutor/internal/app"
	"geotutor/internal/llm"
	"geotutor/internal/problemgen"
	"geotutor/internal/profile"
	"geotutor/internal/session"
	"geotutor/internal/store"

	"github.com/spf13/cobra"
)

// runApp builds the orchestrator and its collaborators and launches
// the TUI. The event log and the advisor are both optional; the tutor
// runs without either.
func runApp(cmd *cobra.Command) error {
	profilesPath, err := resolveProfilesPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve profiles path: %w", err)
	}
	profiles := profile.NewStore(profilesPath)

	opts := []session.Option{}

	// Event log is best-effort: a broken database only costs history.
	st, err := openEventStore(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: event log unavailable: %v\n", err)
	} else {
		defer st.Close()
		opts = append(opts, session.WithEventRepo(st.EventRepo()))
	}

	if boundary := buildAdvisor(cmd); boundary != nil {
		opts = append(opts, session.WithAdvisor(boundary))
	}

	orch := session.New(profiles, problemgen.New(nil), opts...)

	return app.Run(app.Options{Orchestrator: orch})
}

// openEventStore opens the SQLite answer event log.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}

// buildAdvisor picks the reasoning collaborator: the ontology advisor
// when the artifact is present, otherwise an LLM advisor when an API
// key is configured, otherwise none.
func buildAdvisor(cmd *cobra.Command) *advisor.Boundary {
	if ont := advisor.TryLoad(advisor.DefaultOntologyPath()); ont != nil {
		return advisor.NewBoundary("ontology", ont)
	}

	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return nil
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; annotations disabled\n", err)
		return nil
	}
	return advisor.NewBoundary(cfg.Provider, advisor.NewLLMAdvisor(provider, cfg))
}
