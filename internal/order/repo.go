package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, id string, patch *UpdateOrderRequest) (*Order, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (id, customer_id, status, total, delivery_address, delivery_notes, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
    RETURNING created_at, updated_at
  `, o.ID, o.CustomerID, o.Status, o.Total, o.DeliveryAddress, o.DeliveryNotes).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	for i := range o.Items {
		it := &o.Items[i]
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
      VALUES ($1,$2,$3,$4,$5)
    `, it.ID, o.ID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// orderSelect joins the customers table so reads come back with the
// name/email/phone projection without touching the stored reference.
const orderSelect = `
    SELECT o.id, o.customer_id, o.status, o.total::text,
           o.delivery_address, o.delivery_date, o.delivery_notes,
           o.image, o.image_thumbnail, o.created_at, o.updated_at,
           c.id, c.name, c.email, c.phone
    FROM orders o
    LEFT JOIN customers c ON c.id = o.customer_id
`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var cid, cname, cemail, cphone *string
	if err := row.Scan(&o.ID, &o.CustomerID, &o.Status, &o.Total,
		&o.DeliveryAddress, &o.DeliveryDate, &o.DeliveryNotes,
		&o.Image, &o.ImageThumbnail, &o.CreatedAt, &o.UpdatedAt,
		&cid, &cname, &cemail, &cphone); err != nil {
		return nil, err
	}
	if cid != nil {
		o.Customer = &CustomerRef{ID: *cid, Name: deref(cname), Email: deref(cemail), Phone: deref(cphone)}
	}
	return &o, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, notFound("order", id)
		}
		return nil, err
	}
	items, err := r.itemsFor(ctx, []string{o.ID}, false)
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, orderSelect+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, out, false)
}

func (r *PGRepo) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, orderSelect+` WHERE o.customer_id=$1 ORDER BY o.created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	// customer listings also expand each item's product
	return r.attachItems(ctx, out, true)
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) attachItems(ctx context.Context, orders []Order, withProduct bool) ([]Order, error) {
	if len(orders) == 0 {
		return orders, nil
	}
	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	byOrder, err := r.itemsFor(ctx, ids, withProduct)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string, withProduct bool) (map[string][]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price::text,
           p.id, p.name, p.price::text, p.image
    FROM order_items i
    LEFT JOIN products p ON p.id = i.product_id
    WHERE i.order_id = ANY($1)
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item, len(orderIDs))
	for rows.Next() {
		var it Item
		var pid, pname, pprice, pimage *string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice,
			&pid, &pname, &pprice, &pimage); err != nil {
			return nil, err
		}
		if withProduct && pid != nil {
			it.Product = &ProductRef{ID: *pid, Name: deref(pname), Price: deref(pprice), Image: deref(pimage)}
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

// Update merges the patch field by field (NULL leaves the column alone)
// and replaces the item rows when the patch carries items. The total is
// deliberately left untouched: updates never re-price an order.
func (r *PGRepo) Update(ctx context.Context, id string, patch *UpdateOrderRequest) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    UPDATE orders
    SET customer_id      = COALESCE($2, customer_id),
        status           = COALESCE($3, status),
        delivery_address = COALESCE($4, delivery_address),
        delivery_date    = COALESCE($5, delivery_date),
        delivery_notes   = COALESCE($6, delivery_notes),
        image            = COALESCE($7, image),
        image_thumbnail  = COALESCE($8, image_thumbnail),
        updated_at       = NOW()
    WHERE id = $1
  `, id, patch.CustomerID, patch.Status, patch.DeliveryAddress,
		patch.DeliveryDate, patch.DeliveryNotes, patch.Image, patch.ImageThumbnail)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, notFound("order", id)
	}

	if patch.Items != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, id); err != nil {
			return nil, err
		}
		for _, it := range patch.Items {
			price := it.UnitPrice
			if price == "" {
				price = "0"
			}
			if _, err := tx.Exec(ctx, `
        INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
        VALUES ($1,$2,$3,$4,$5)
      `, uuid.NewString(), id, it.ProductID, it.Quantity, price); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
