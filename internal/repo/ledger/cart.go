package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/cart"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repo) GetOpenCart(ctx context.Context, userID uuid.UUID) (cart.Cart, error) {
	return r.getCart(ctx, squirrel.Eq{"user_id": userID, "purchased": false})
}

func (r *repo) GetCartByID(ctx context.Context, id uuid.UUID) (cart.Cart, error) {
	return r.getCart(ctx, squirrel.Eq{"id": id})
}

func (r *repo) getCart(ctx context.Context, where squirrel.Eq) (cart.Cart, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "purchased", "created_at", "updated_at").
		From("carts").
		Where(where).
		ToSql()
	if err != nil {
		return cart.Cart{}, fmt.Errorf("build cart query: %w", err)
	}

	var c cart.Cart
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.UserID, &c.Purchased, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return cart.Cart{}, apperror.ErrCartNotFound
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("query cart: %w", err)
	}

	c.Items, err = r.getCartItems(ctx, c.ID)
	if err != nil {
		return cart.Cart{}, err
	}
	return c, nil
}

func (r *repo) getCartItems(ctx context.Context, cartID uuid.UUID) ([]cart.Item, error) {
	query, args, err := r.builder.
		Select("id", "cart_id", "course_id", "course_title", "price", "created_at").
		From("cart_items").
		Where(squirrel.Eq{"cart_id": cartID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cart items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	var items []cart.Item
	for rows.Next() {
		var it cart.Item
		if err := rows.Scan(&it.ID, &it.CartID, &it.CourseID, &it.CourseTitle, &it.Price, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}
	return items, nil
}

func (r *repo) CreateCart(ctx context.Context, c cart.Cart) error {
	query, args, err := r.builder.
		Insert("carts").
		Columns("id", "user_id", "purchased").
		Values(c.ID, c.UserID, false).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert cart query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	return nil
}

func (r *repo) AddCartItem(ctx context.Context, item cart.Item) error {
	query, args, err := r.builder.
		Insert("cart_items").
		Columns("id", "cart_id", "course_id", "course_title", "price").
		Values(item.ID, item.CartID, item.CourseID, item.CourseTitle, item.Price).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert cart item query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *repo) MarkCartPurchased(ctx context.Context, cartID uuid.UUID) error {
	query, args, err := r.builder.
		Update("carts").
		Set("purchased", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark purchased query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark cart purchased: %w", err)
	}
	return nil
}
