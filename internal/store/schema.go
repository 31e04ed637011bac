package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id          TEXT PRIMARY KEY,
    direction   TEXT NOT NULL,
    amount      REAL NOT NULL,
    description TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    date        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS recurring (
    id          TEXT PRIMARY KEY,
    direction   TEXT NOT NULL,
    amount      REAL NOT NULL,
    description TEXT NOT NULL,
    category    TEXT NOT NULL DEFAULT '',
    frequency   TEXT NOT NULL,
    next_date   TEXT NOT NULL,
    end_date    TEXT,
    active      INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS debts (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    kind            TEXT NOT NULL,
    principal       REAL NOT NULL,
    balance         REAL NOT NULL,
    annual_rate     REAL NOT NULL,
    monthly_payment REAL NOT NULL,
    start_date      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    target_amount  REAL NOT NULL,
    current_amount REAL NOT NULL,
    target_date    TEXT NOT NULL,
    priority       INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_direction ON transactions(direction);
CREATE INDEX IF NOT EXISTS idx_recurring_active ON recurring(active);
`
