package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func questionCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "question", Short: "Question status changes"}
	cmd.AddCommand(
		statusCmd("publish", "Publish a draft question", func(ctx context.Context, id int64) error {
			return store.PublishQuestion(ctx, id)
		}),
		statusCmd("disable", "Disable a published question", func(ctx context.Context, id int64) error {
			return store.DisableQuestion(ctx, id)
		}),
	)
	return cmd
}

func answerCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "answer", Short: "Answer status changes"}
	cmd.AddCommand(
		statusCmd("publish", "Publish a draft answer", func(ctx context.Context, id int64) error {
			return store.PublishAnswer(ctx, id)
		}),
		statusCmd("disable", "Disable a published answer", func(ctx context.Context, id int64) error {
			return store.DisableAnswer(ctx, id)
		}),
	)
	return cmd
}

func productCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "product", Short: "Product status changes"}
	cmd.AddCommand(
		statusCmd("publish", "Publish a draft product", func(ctx context.Context, id int64) error {
			return store.PublishProduct(ctx, id)
		}),
		statusCmd("disable", "Disable a published product", func(ctx context.Context, id int64) error {
			return store.DisableProduct(ctx, id)
		}),
	)
	return cmd
}

func statusCmd(verb, short string, change func(ctx context.Context, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := change(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", verb)
			return nil
		},
	}
}
