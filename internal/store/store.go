// Package store provides the SQLite-backed local database for fincast data.
package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fincast/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Store wraps the fincast SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewID returns a random identifier for a new row.
func NewID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// SaveTransaction inserts or replaces a transaction.
func (s *Store) SaveTransaction(t model.Transaction) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO transactions
		(id, direction, amount, description, category, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Direction), t.Amount, t.Description, t.Category,
		t.Date.UTC().Format(dateLayout),
	)
	return err
}

// SaveTransactions inserts a batch in one transaction. Used by the importer.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO transactions
		(id, direction, amount, description, category, date)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range txns {
		if _, err := stmt.Exec(t.ID, string(t.Direction), t.Amount,
			t.Description, t.Category, t.Date.UTC().Format(dateLayout)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadTransactions reads all transactions ordered by date.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, direction, amount, description, category, date
		FROM transactions ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var direction, date string
		if err := rows.Scan(&t.ID, &direction, &t.Amount, &t.Description, &t.Category, &date); err != nil {
			return nil, err
		}
		t.Direction = model.Direction(direction)
		if t.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("transaction %s: bad date %q: %w", t.ID, date, err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id string) error {
	_, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

// SaveRecurring inserts or replaces a recurring obligation.
func (s *Store) SaveRecurring(r model.RecurringObligation) error {
	var endDate sql.NullString
	if !r.EndDate.IsZero() {
		endDate = sql.NullString{String: r.EndDate.UTC().Format(dateLayout), Valid: true}
	}

	active := 0
	if r.Active {
		active = 1
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO recurring
		(id, direction, amount, description, category, frequency, next_date, end_date, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Direction), r.Amount, r.Description, r.Category,
		string(r.Frequency), r.NextDate.UTC().Format(dateLayout), endDate, active,
	)
	return err
}

// LoadRecurring reads all recurring obligations, active and inactive.
func (s *Store) LoadRecurring() ([]model.RecurringObligation, error) {
	rows, err := s.db.Query(`SELECT id, direction, amount, description, category,
		frequency, next_date, end_date, active FROM recurring ORDER BY next_date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var obligations []model.RecurringObligation
	for rows.Next() {
		var r model.RecurringObligation
		var direction, frequency, nextDate string
		var endDate sql.NullString
		var active int
		if err := rows.Scan(&r.ID, &direction, &r.Amount, &r.Description, &r.Category,
			&frequency, &nextDate, &endDate, &active); err != nil {
			return nil, err
		}
		r.Direction = model.Direction(direction)
		r.Frequency = model.Frequency(frequency)
		r.Active = active != 0
		if r.NextDate, err = time.Parse(dateLayout, nextDate); err != nil {
			return nil, fmt.Errorf("recurring %s: bad date %q: %w", r.ID, nextDate, err)
		}
		if endDate.Valid && endDate.String != "" {
			if r.EndDate, err = time.Parse(dateLayout, endDate.String); err != nil {
				return nil, fmt.Errorf("recurring %s: bad end date %q: %w", r.ID, endDate.String, err)
			}
		}
		obligations = append(obligations, r)
	}
	return obligations, rows.Err()
}

// DeleteRecurring removes a recurring obligation by id.
func (s *Store) DeleteRecurring(id string) error {
	_, err := s.db.Exec("DELETE FROM recurring WHERE id = ?", id)
	return err
}

// SaveDebt inserts or replaces a debt.
func (s *Store) SaveDebt(d model.Debt) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO debts
		(id, name, kind, principal, balance, annual_rate, monthly_payment, start_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, string(d.Kind), d.Principal, d.Balance,
		d.AnnualRate, d.MonthlyPayment, d.StartDate.UTC().Format(dateLayout),
	)
	return err
}

// LoadDebts reads all debts ordered by name.
func (s *Store) LoadDebts() ([]model.Debt, error) {
	rows, err := s.db.Query(`SELECT id, name, kind, principal, balance,
		annual_rate, monthly_payment, start_date FROM debts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		var kind, startDate string
		if err := rows.Scan(&d.ID, &d.Name, &kind, &d.Principal, &d.Balance,
			&d.AnnualRate, &d.MonthlyPayment, &startDate); err != nil {
			return nil, err
		}
		d.Kind = model.DebtKind(kind)
		if d.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
			return nil, fmt.Errorf("debt %s: bad date %q: %w", d.ID, startDate, err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// DeleteDebt removes a debt by id.
func (s *Store) DeleteDebt(id string) error {
	_, err := s.db.Exec("DELETE FROM debts WHERE id = ?", id)
	return err
}

// SaveGoal inserts or replaces a goal.
func (s *Store) SaveGoal(g model.Goal) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals
		(id, name, target_amount, current_amount, target_date, priority)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.TargetAmount, g.CurrentAmount,
		g.TargetDate.UTC().Format(dateLayout), g.Priority,
	)
	return err
}

// LoadGoals reads all goals ordered by priority, then name.
func (s *Store) LoadGoals() ([]model.Goal, error) {
	rows, err := s.db.Query(`SELECT id, name, target_amount, current_amount,
		target_date, priority FROM goals`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var targetDate string
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
			&targetDate, &g.Priority); err != nil {
			return nil, err
		}
		if g.TargetDate, err = time.Parse(dateLayout, targetDate); err != nil {
			return nil, fmt.Errorf("goal %s: bad date %q: %w", g.ID, targetDate, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Priority != goals[j].Priority {
			return goals[i].Priority < goals[j].Priority
		}
		return goals[i].Name < goals[j].Name
	})

	return goals, nil
}

// DeleteGoal removes a goal by id.
func (s *Store) DeleteGoal(id string) error {
	_, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	return err
}

// Snapshot is the full dataset the engine operates on.
type Snapshot struct {
	Transactions []model.Transaction
	Recurring    []model.RecurringObligation
	Debts        []model.Debt
	Goals        []model.Goal
}

// ActiveRecurring filters the snapshot's obligations to active ones.
func (s Snapshot) ActiveRecurring() []model.RecurringObligation {
	var active []model.RecurringObligation
	for _, r := range s.Recurring {
		if r.Active {
			active = append(active, r)
		}
	}
	return active
}

// LoadSnapshot reads everything the engine needs in one call.
func (s *Store) LoadSnapshot() (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Transactions, err = s.LoadTransactions(); err != nil {
		return Snapshot{}, fmt.Errorf("loading transactions: %w", err)
	}
	if snap.Recurring, err = s.LoadRecurring(); err != nil {
		return Snapshot{}, fmt.Errorf("loading recurring: %w", err)
	}
	if snap.Debts, err = s.LoadDebts(); err != nil {
		return Snapshot{}, fmt.Errorf("loading debts: %w", err)
	}
	if snap.Goals, err = s.LoadGoals(); err != nil {
		return Snapshot{}, fmt.Errorf("loading goals: %w", err)
	}

	return snap, nil
}
