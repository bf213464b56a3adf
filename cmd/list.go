package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbctl/filter"
)

// statusConcurrency bounds parallel item_status lookups
const statusConcurrency = 10

var filterExpr string

// listCmd groups the list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage TMDb movie lists",
}

var listGetCmd = &cobra.Command{
	Use:   "get <list-id>",
	Short: "Show a list and its movies",
	Args:  cobra.ExactArgs(1),
	RunE:  runListGet,
}

var listStatusCmd = &cobra.Command{
	Use:   "status <list-id> <movie-id>...",
	Short: "Check whether movies are on a list",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runListStatus,
}

var listCreateCmd = &cobra.Command{
	Use:   "create <name> [description]",
	Short: "Create a new list",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runListCreate,
}

var listAddCmd = &cobra.Command{
	Use:   "add <list-id> <movie-id>...",
	Short: "Add movies to a list",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runListModify("add"),
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove <list-id> <movie-id>...",
	Short: "Remove movies from a list",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runListModify("remove"),
}

var listDeleteCmd = &cobra.Command{
	Use:   "delete <list-id>",
	Short: "Delete a list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListDelete,
}

func init() {
	listGetCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the list entries")
	listDeleteCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip the confirmation prompt")

	listCmd.AddCommand(listGetCmd)
	listCmd.AddCommand(listStatusCmd)
	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listRemoveCmd)
	listCmd.AddCommand(listDeleteCmd)
	rootCmd.AddCommand(listCmd)
}

func runListGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	list, err := client.GetList(ctx, args[0])
	if err != nil {
		return err
	}

	movies := list.Items
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		movies, err = f.Apply(movies)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s (%s)\n", list.Name, list.ID)
	if list.Description != "" {
		fmt.Println(list.Description)
	}
	fmt.Printf("%d of %d movies", len(movies), list.ItemCount)
	if filterExpr != "" {
		fmt.Printf(" matching %q", filterExpr)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 80))

	for _, movie := range movies {
		fmt.Printf("• %s", movie.Title)
		if year := movie.ReleaseYear(); year > 0 {
			fmt.Printf(" (%d)", year)
		}
		fmt.Println()
		if cfg.Safety.ShowDetails {
			fmt.Printf("  ID: %d", movie.ID)
			if movie.VoteCount > 0 {
				fmt.Printf("  Rating: %.1f (%d votes)", movie.VoteAverage, movie.VoteCount)
			}
			fmt.Println()
		}
	}

	return nil
}

func runListStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	listID := args[0]

	movieIDs, err := parseMovieIDs(args[1:])
	if err != nil {
		return err
	}

	results := make(map[int]bool, len(movieIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statusConcurrency)

	for _, movieID := range movieIDs {
		movieID := movieID
		g.Go(func() error {
			present, err := client.IsMovieOnList(ctx, listID, movieID)
			if err != nil {
				return fmt.Errorf("failed to check movie %d: %w", movieID, err)
			}
			mu.Lock()
			results[movieID] = present
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, movieID := range movieIDs {
		if results[movieID] {
			fmt.Printf("✓ %d is on list %s\n", movieID, listID)
		} else {
			fmt.Printf("✗ %d is not on list %s\n", movieID, listID)
		}
	}

	return nil
}

func runListCreate(cmd *cobra.Command, args []string) error {
	session, err := currentSession()
	if err != nil {
		return err
	}

	name := args[0]
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would create list %q\n", strings.TrimSpace(name))
		return nil
	}

	status, err := client.CreateList(context.Background(), session, name, description)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("TMDb refused to create the list: %s", status.Message)
	}

	fmt.Printf("Created list %s\n", status.ListID)
	return nil
}

// runListModify builds the handler shared by the add and remove commands
func runListModify(verb string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		session, err := currentSession()
		if err != nil {
			return err
		}

		ctx := context.Background()
		listID := args[0]

		movieIDs, err := parseMovieIDs(args[1:])
		if err != nil {
			return err
		}

		call := client.AddMovieToList
		if verb == "remove" {
			call = client.RemoveMovieFromList
		}

		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would %s %d movie(s) on list %s\n", verb, len(movieIDs), listID)
			return nil
		}

		var failures int
		for _, movieID := range movieIDs {
			status, err := call(ctx, session, listID, movieID)
			if err != nil {
				logger.Error().Err(err).Int("movie_id", movieID).Msgf("Failed to %s movie", verb)
				failures++
				continue
			}
			if !status.Success() {
				fmt.Printf("✗ %d: %s\n", movieID, status.Message)
				failures++
				continue
			}
			fmt.Printf("✓ %d\n", movieID)
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d operations failed", failures, len(movieIDs))
		}
		return nil
	}
}

func runListDelete(cmd *cobra.Command, args []string) error {
	session, err := currentSession()
	if err != nil {
		return err
	}

	listID := args[0]

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete list %s\n", listID)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		fmt.Printf("Delete list %s? This cannot be undone. [y/N]: ", listID)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	status, err := client.DeleteList(context.Background(), session, listID)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("TMDb refused to delete the list: %s", status.Message)
	}

	fmt.Printf("Deleted list %s\n", listID)
	return nil
}

func parseMovieIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q: must be a positive integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
