package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewBlogCommand creates the blog command.
func NewBlogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blog [id]",
		Short: "List blog posts or read one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(rootOpts, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 0 {
				return writePosts(cmd.OutOrStdout(), rootOpts.Format, s.Blog().Posts())
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			post, ok := s.Blog().Get(id)
			if !ok {
				return fmt.Errorf("no blog post with id %d", id)
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), post)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n\n%s\n", post.Title, post.Category, post.Date, post.Content)
			return nil
		},
	}
}
