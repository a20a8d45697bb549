package cli

import (
	"time"

	"github.com/ozdata/bizname-search/internal/datastore"
	"github.com/ozdata/bizname-search/internal/render"
	"github.com/ozdata/bizname-search/internal/search"
	"github.com/ozdata/bizname-search/pkg/service"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	state  string
	status string
	after  string
	name   string
	view   string
	limit  int
}

// New builds the root bizname-search command around env.
func New(env *service.Environment) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "bizname-search",
		Short: "Explore the Australian Business Names Register",
		Long: `bizname-search fetches one bounded batch of business name records from
the data.gov.au register and renders it as a table, a per-state
histogram, or a registrations-per-year chart. Filters narrow the
fetched batch and never trigger another fetch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, flags)
		},
	}

	cmd.Flags().StringVar(&flags.state, "state", "", "filter by state of registration (e.g. VIC, NSW)")
	cmd.Flags().StringVar(&flags.status, "status", "", "filter by business status (e.g. Registered, Deregistered)")
	cmd.Flags().StringVar(&flags.after, "after", "", "only businesses registered on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.name, "name", "", "rank businesses by fuzzy match against this name")
	cmd.Flags().StringVar(&flags.view, "view", string(render.ModeList), "output view: list, histogram, or chart")
	cmd.Flags().IntVar(&flags.limit, "limit", 100, "maximum records to fetch from the register")

	return cmd
}

func run(cmd *cobra.Command, env *service.Environment, flags rootFlags) error {
	params, mode, err := buildParams(flags)
	if err != nil {
		return err
	}

	repository, err := datastore.NewRepository(env.Config.Datastore)
	if err != nil {
		return err
	}

	searchService, err := search.NewService(env.Logger, env.Config.Search, repository)
	if err != nil {
		return err
	}

	records, err := searchService.Search(cmd.Context(), params)
	if err != nil {
		return err
	}

	return render.NewRenderer(cmd.OutOrStdout()).Render(mode, records)
}

// buildParams validates the flag values before anything touches the
// network.
func buildParams(flags rootFlags) (search.FilterParams, render.Mode, error) {
	params := search.FilterParams{
		State:  flags.state,
		Status: flags.status,
		Name:   flags.name,
		Limit:  flags.limit,
	}

	if flags.limit <= 0 {
		return params, "", usageErrorf("--limit must be a positive integer, got %d", flags.limit)
	}

	if flags.after != "" {
		when, err := time.Parse("2006-01-02", flags.after)
		if err != nil {
			return params, "", usageErrorf("--after must be a date in YYYY-MM-DD form, got %q", flags.after)
		}
		params.RegisteredAfter = &when
	}

	mode, err := render.ParseMode(flags.view)
	if err != nil {
		return params, "", &UsageError{Err: err}
	}

	return params, mode, nil
}
