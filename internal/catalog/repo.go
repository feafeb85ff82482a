package catalog

import "context"

// Store is the catalog persistence contract. CRUD plus the status guard for
// questions, answers, products, restriction rules and transition rules, and
// a Snapshot read used when a quiz session is created.
type Store interface {
	CreateQuestion(ctx context.Context, text string) (Question, error)
	PublishQuestion(ctx context.Context, id int64) error
	DisableQuestion(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context) ([]Question, error)

	CreateAnswer(ctx context.Context, questionID int64, text string) (Answer, error)
	PublishAnswer(ctx context.Context, id int64) error
	DisableAnswer(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, name, description string) (Product, error)
	// UpdateProduct rewrites name and description. Status changes go through
	// PublishProduct and DisableProduct.
	UpdateProduct(ctx context.Context, p Product) error
	PublishProduct(ctx context.Context, id int64) error
	DisableProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context) ([]Product, error)

	CreateRestriction(ctx context.Context, answerID, productID int64) (RestrictionRule, error)
	DeleteRestriction(ctx context.Context, id int64) error
	ListRestrictions(ctx context.Context, answerID int64) ([]RestrictionRule, error)

	CreateTransition(ctx context.Context, t TransitionRule) (TransitionRule, error)
	UpdateTransition(ctx context.Context, t TransitionRule) error
	DeleteTransition(ctx context.Context, id int64) error
	GetTransition(ctx context.Context, id int64) (TransitionRule, error)
	ListTransitions(ctx context.Context) ([]TransitionRule, error)

	// Snapshot returns the full catalog in a stable order (ascending ids).
	Snapshot(ctx context.Context) (Snapshot, error)
}
