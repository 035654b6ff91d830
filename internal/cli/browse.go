package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"movie-catalog/internal/domain"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the whole catalog in collection order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			printMovies(a.manager.All())
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			movie, err := a.manager.ByID(args[0])
			if err != nil {
				return err
			}
			printMovie(movie)
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var genre string
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search title, director, and description",
		Long: `Search matches the term case-insensitively against title, director, and
description. A genre filter can be applied on top; with neither term nor
genre the whole catalog is returned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			term := ""
			if len(args) > 0 {
				term = args[0]
			}
			printMovies(a.manager.SearchAndFilter(term, genre))
			return nil
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "restrict matches to one genre")
	return cmd
}

func (a *app) recentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent [n]",
		Short: "Show the most recently added records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n := 0 // manager default
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid count %q", args[0])
				}
				n = parsed
			}
			printMovies(a.manager.RecentN(n))
			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var by string
	var desc bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Show the catalog sorted by rating or year",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			switch by {
			case "rating":
				printMovies(a.manager.SortByRating(desc))
			case "year":
				printMovies(a.manager.SortByYear(desc))
			default:
				return fmt.Errorf("unknown sort field %q (want rating or year)", by)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "rating", "sort field: rating or year")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func (a *app) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the configured genre set",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(strings.Join(a.manager.Genres(), "\n"))
			return nil
		},
	}
}

func printMovies(movies []*domain.Movie) {
	if len(movies) == 0 {
		fmt.Println("No movies found")
		return
	}
	for _, movie := range movies {
		fmt.Printf("%s  %-30s  %-10s  %4d  %4.1f  %s\n",
			movie.ID, movie.Title, movie.Genre, movie.Year, movie.Rating, movie.Director)
	}
}

func printMovie(movie *domain.Movie) {
	fmt.Printf("ID:          %s\n", movie.ID)
	fmt.Printf("Title:       %s\n", movie.Title)
	fmt.Printf("Genre:       %s\n", movie.Genre)
	fmt.Printf("Director:    %s\n", movie.Director)
	fmt.Printf("Year:        %d\n", movie.Year)
	fmt.Printf("Rating:      %.1f\n", movie.Rating)
	fmt.Printf("Image:       %s\n", movie.ImageURL)
	fmt.Printf("Added:       %s\n", movie.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Description: %s\n", movie.Description)
}
