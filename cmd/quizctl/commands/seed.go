package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/manual-labs/quizflow/internal/catalog"
)

// Seed file shape. Entities reference each other by key, resolved to ids as
// they are created.
type seedFile struct {
	Questions []struct {
		Key     string `yaml:"key"`
		Text    string `yaml:"text"`
		Publish bool   `yaml:"publish"`
		Answers []struct {
			Key     string `yaml:"key"`
			Text    string `yaml:"text"`
			Publish bool   `yaml:"publish"`
		} `yaml:"answers"`
	} `yaml:"questions"`
	Products []struct {
		Key         string `yaml:"key"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Publish     bool   `yaml:"publish"`
	} `yaml:"products"`
	Transitions []struct {
		Answer       string `yaml:"answer"`
		NextQuestion string `yaml:"next_question"`
		Product      string `yaml:"product"`
	} `yaml:"transitions"`
	Restrictions []struct {
		Answer  string `yaml:"answer"`
		Product string `yaml:"product"`
	} `yaml:"restrictions"`
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load a catalog from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var f seedFile
			if err := yaml.Unmarshal(raw, &f); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}
			return seed(cmd.Context(), store, f)
		},
	}
}

func seed(ctx context.Context, store catalog.Store, f seedFile) error {
	questionIDs := map[string]int64{}
	answerIDs := map[string]int64{}
	productIDs := map[string]int64{}

	for _, qs := range f.Questions {
		q, err := store.CreateQuestion(ctx, qs.Text)
		if err != nil {
			return fmt.Errorf("question %q: %w", qs.Key, err)
		}
		questionIDs[qs.Key] = q.ID
		if qs.Publish {
			if err := store.PublishQuestion(ctx, q.ID); err != nil {
				return fmt.Errorf("publish question %q: %w", qs.Key, err)
			}
		}
		for _, as := range qs.Answers {
			a, err := store.CreateAnswer(ctx, q.ID, as.Text)
			if err != nil {
				return fmt.Errorf("answer %q: %w", as.Key, err)
			}
			answerIDs[as.Key] = a.ID
			if as.Publish {
				if err := store.PublishAnswer(ctx, a.ID); err != nil {
					return fmt.Errorf("publish answer %q: %w", as.Key, err)
				}
			}
		}
	}

	for _, ps := range f.Products {
		p, err := store.CreateProduct(ctx, ps.Name, ps.Description)
		if err != nil {
			return fmt.Errorf("product %q: %w", ps.Key, err)
		}
		productIDs[ps.Key] = p.ID
		if ps.Publish {
			if err := store.PublishProduct(ctx, p.ID); err != nil {
				return fmt.Errorf("publish product %q: %w", ps.Key, err)
			}
		}
	}

	for i, ts := range f.Transitions {
		rule := catalog.TransitionRule{}
		var ok bool
		if rule.AnswerID, ok = answerIDs[ts.Answer]; !ok {
			return fmt.Errorf("transition %d: unknown answer key %q", i, ts.Answer)
		}
		if ts.NextQuestion != "" {
			id, ok := questionIDs[ts.NextQuestion]
			if !ok {
				return fmt.Errorf("transition %d: unknown question key %q", i, ts.NextQuestion)
			}
			rule.NextQuestionID = &id
		}
		if ts.Product != "" {
			id, ok := productIDs[ts.Product]
			if !ok {
				return fmt.Errorf("transition %d: unknown product key %q", i, ts.Product)
			}
			rule.ProductID = &id
		}
		if _, err := store.CreateTransition(ctx, rule); err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}
	}

	for i, rs := range f.Restrictions {
		answerID, ok := answerIDs[rs.Answer]
		if !ok {
			return fmt.Errorf("restriction %d: unknown answer key %q", i, rs.Answer)
		}
		productID, ok := productIDs[rs.Product]
		if !ok {
			return fmt.Errorf("restriction %d: unknown product key %q", i, rs.Product)
		}
		if _, err := store.CreateRestriction(ctx, answerID, productID); err != nil {
			return fmt.Errorf("restriction %d: %w", i, err)
		}
	}

	fmt.Printf("seeded %d questions, %d products, %d transitions, %d restrictions\n",
		len(f.Questions), len(f.Products), len(f.Transitions), len(f.Restrictions))
	return nil
}
