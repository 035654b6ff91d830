package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"movie-catalog/internal/domain"
)

// draftFlags binds the complete set of record fields. Update uses the same
// set as add: a record is always replaced wholesale.
type draftFlags struct {
	draft domain.Draft
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.draft.Title, "title", "", "movie title")
	cmd.Flags().StringVar(&f.draft.Genre, "genre", "", "movie genre")
	cmd.Flags().StringVar(&f.draft.Director, "director", "", "movie director")
	cmd.Flags().IntVar(&f.draft.Year, "year", 0, "release year")
	cmd.Flags().Float64Var(&f.draft.Rating, "rating", 0, "rating from 1 to 10")
	cmd.Flags().StringVar(&f.draft.Description, "description", "", "plot description")
	cmd.Flags().StringVar(&f.draft.ImageURL, "image", "", "poster image URL")
}

func (a *app) addCmd() *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new record to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			movie, err := a.manager.Add(flags.draft)
			if err := a.reportMutation(err); err != nil {
				return err
			}
			fmt.Println("Added", movie.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var flags draftFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing record",
		Long: `Update replaces the record wholesale with the given fields. Flags left
unset default to the record's current values. The creation timestamp is
always preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			current, err := a.manager.ByID(args[0])
			if err != nil {
				return err
			}
			draft := mergeDraft(current.Draft(), flags.draft, cmd)

			movie, err := a.manager.Update(args[0], draft)
			if err := a.reportMutation(err); err != nil {
				return err
			}
			fmt.Println("Updated", movie.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a record from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			if err := a.reportMutation(a.manager.Delete(args[0])); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}
}

// mergeDraft starts from the record's current fields and overlays every flag
// the user set, so the manager always receives a complete draft.
func mergeDraft(base, flags domain.Draft, cmd *cobra.Command) domain.Draft {
	if cmd.Flags().Changed("title") {
		base.Title = flags.Title
	}
	if cmd.Flags().Changed("genre") {
		base.Genre = flags.Genre
	}
	if cmd.Flags().Changed("director") {
		base.Director = flags.Director
	}
	if cmd.Flags().Changed("year") {
		base.Year = flags.Year
	}
	if cmd.Flags().Changed("rating") {
		base.Rating = flags.Rating
	}
	if cmd.Flags().Changed("description") {
		base.Description = flags.Description
	}
	if cmd.Flags().Changed("image") {
		base.ImageURL = flags.ImageURL
	}
	return base
}
