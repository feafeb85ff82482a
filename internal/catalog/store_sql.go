package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) CreateQuestion(ctx context.Context, text string) (Question, error) {
	q := Question{Text: text, Status: StatusDraft, Answers: []Answer{}}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO questions (text, status) VALUES ($1, 'draft') RETURNING id`, text).Scan(&q.ID)
	if err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *SQLStore) PublishQuestion(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "questions", id, StatusPublished)
}

func (s *SQLStore) DisableQuestion(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "questions", id, StatusDisabled)
}

func (s *SQLStore) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT q.id, q.text, q.status, a.id, a.text, a.status
		FROM questions q
		LEFT JOIN answers a ON a.question_id = q.id
		ORDER BY q.id, a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	idx := map[int64]int{}
	for rows.Next() {
		var (
			q      Question
			aID    sql.NullInt64
			aText  sql.NullString
			aState sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.Text, &q.Status, &aID, &aText, &aState); err != nil {
			return nil, err
		}
		i, seen := idx[q.ID]
		if !seen {
			q.Answers = []Answer{}
			out = append(out, q)
			i = len(out) - 1
			idx[q.ID] = i
		}
		if aID.Valid {
			out[i].Answers = append(out[i].Answers, Answer{
				ID:     aID.Int64,
				Text:   aText.String,
				Status: Status(aState.String),
			})
		}
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateAnswer(ctx context.Context, questionID int64, text string) (Answer, error) {
	a := Answer{Text: text, Status: StatusDraft}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO answers (question_id, text, status) VALUES ($1, $2, 'draft') RETURNING id`,
		questionID, text).Scan(&a.ID)
	if err != nil {
		return Answer{}, err
	}
	return a, nil
}

func (s *SQLStore) PublishAnswer(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "answers", id, StatusPublished)
}

func (s *SQLStore) DisableAnswer(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "answers", id, StatusDisabled)
}

func (s *SQLStore) CreateProduct(ctx context.Context, name, description string) (Product, error) {
	p := Product{Name: name, Description: description, Status: StatusDraft}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, status) VALUES ($1, $2, 'draft') RETURNING id`,
		name, description).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *SQLStore) UpdateProduct(ctx context.Context, p Product) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET name=$1, description=$2 WHERE id=$3`,
		p.Name, p.Description, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "product")
}

func (s *SQLStore) PublishProduct(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "products", id, StatusPublished)
}

func (s *SQLStore) DisableProduct(ctx context.Context, id int64) error {
	return s.changeStatus(ctx, "products", id, StatusDisabled)
}

func (s *SQLStore) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, status FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var (
			p    Product
			desc sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &desc, &p.Status); err != nil {
			return nil, err
		}
		p.Description = desc.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateRestriction(ctx context.Context, answerID, productID int64) (RestrictionRule, error) {
	r := RestrictionRule{AnswerID: answerID, ProductID: productID}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO product_restrictions (answer_id, product_id) VALUES ($1, $2) RETURNING id`,
		answerID, productID).Scan(&r.ID)
	if err != nil {
		return RestrictionRule{}, err
	}
	return r, nil
}

func (s *SQLStore) DeleteRestriction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM product_restrictions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "restriction")
}

// ListRestrictions returns restriction rules, optionally filtered by answer.
// Pass answerID 0 for all rules.
func (s *SQLStore) ListRestrictions(ctx context.Context, answerID int64) ([]RestrictionRule, error) {
	query := `SELECT id, answer_id, product_id FROM product_restrictions ORDER BY id`
	args := []any{}
	if answerID != 0 {
		query = `SELECT id, answer_id, product_id FROM product_restrictions WHERE answer_id=$1 ORDER BY id`
		args = append(args, answerID)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RestrictionRule
	for rows.Next() {
		var r RestrictionRule
		if err := rows.Scan(&r.ID, &r.AnswerID, &r.ProductID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateTransition(ctx context.Context, t TransitionRule) (TransitionRule, error) {
	if err := t.Validate(); err != nil {
		return TransitionRule{}, err
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO question_transitions (answer_id, next_question_id, product_id)
		 VALUES ($1, $2, $3) RETURNING id`,
		t.AnswerID, t.NextQuestionID, t.ProductID).Scan(&t.ID)
	if err != nil {
		return TransitionRule{}, err
	}
	return t, nil
}

func (s *SQLStore) UpdateTransition(ctx context.Context, t TransitionRule) error {
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE question_transitions SET answer_id=$1, next_question_id=$2, product_id=$3 WHERE id=$4`,
		t.AnswerID, t.NextQuestionID, t.ProductID, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "transition")
}

func (s *SQLStore) DeleteTransition(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question_transitions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "transition")
}

func (s *SQLStore) GetTransition(ctx context.Context, id int64) (TransitionRule, error) {
	var t TransitionRule
	err := s.db.QueryRowContext(ctx,
		`SELECT id, answer_id, next_question_id, product_id FROM question_transitions WHERE id=$1`, id).
		Scan(&t.ID, &t.AnswerID, &t.NextQuestionID, &t.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return TransitionRule{}, fmt.Errorf("transition %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return TransitionRule{}, err
	}
	return t, nil
}

func (s *SQLStore) ListTransitions(ctx context.Context) ([]TransitionRule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, answer_id, next_question_id, product_id FROM question_transitions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransitionRule
	for rows.Next() {
		var t TransitionRule
		if err := rows.Scan(&t.ID, &t.AnswerID, &t.NextQuestionID, &t.ProductID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLStore) Snapshot(ctx context.Context) (Snapshot, error) {
	questions, err := s.ListQuestions(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	products, err := s.ListProducts(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	restrictions, err := s.ListRestrictions(ctx, 0)
	if err != nil {
		return Snapshot{}, err
	}
	transitions, err := s.ListTransitions(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Questions:    questions,
		Products:     products,
		Restrictions: restrictions,
		Transitions:  transitions,
	}, nil
}

// changeStatus applies the draft->published->disabled guard before updating.
func (s *SQLStore) changeStatus(ctx context.Context, table string, id int64, next Status) error {
	var cur Status
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT status FROM %s WHERE id=$1`, table), id).Scan(&cur)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !cur.CanBecome(next) {
		return fmt.Errorf("%w: %s %d is %q, cannot become %q", ErrStatusChange, table, id, cur, next)
	}
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET status=$1 WHERE id=$2`, table), next, id)
	return err
}

func requireRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
