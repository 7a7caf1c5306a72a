package api

import (
	"context"
	"io"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"todo-api/internal/domain"
	apperrors "todo-api/internal/errors"
	"todo-api/internal/repository/sqlite"
)

// memoryTable is an in-memory stand-in for one collection's table.
type memoryTable struct {
	mu     sync.Mutex
	noun   string
	rows   map[int64]string
	nextID int64
	err    error
	panic  bool
	opened int
	closed int
}

func newMemoryTable(noun string) *memoryTable {
	return &memoryTable{noun: noun, rows: make(map[int64]string), nextID: 1}
}

func (t *memoryTable) counts() (opened, closed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opened, t.closed
}

type memoryDAO struct {
	table *memoryTable
}

// memoryDAOs returns a factory serving one memoryTable per collection.
func memoryDAOs(tables map[string]*memoryTable) DAOFactory {
	return func(c domain.Collection) TaskDAO {
		table := tables[c.Name]
		table.mu.Lock()
		table.opened++
		table.mu.Unlock()
		return &memoryDAO{table: table}
	}
}

func (d *memoryDAO) fail() error {
	if d.table.panic {
		panic("storage exploded")
	}
	if d.table.err != nil {
		return apperrors.NewDatabaseError("fake", d.table.err)
	}
	return nil
}

func (d *memoryDAO) All(ctx context.Context) ([]*sqlite.Record, error) {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	if err := d.fail(); err != nil {
		return nil, err
	}
	records := make([]*sqlite.Record, 0, len(d.table.rows))
	for id := int64(1); id < d.table.nextID; id++ {
		if text, ok := d.table.rows[id]; ok {
			records = append(records, sqlite.NewRecord(id, text))
		}
	}
	return records, nil
}

func (d *memoryDAO) Get(ctx context.Context, id int64) (*sqlite.Record, error) {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	if err := d.fail(); err != nil {
		return nil, err
	}
	text, ok := d.table.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(d.table.noun, strconv.FormatInt(id, 10))
	}
	return sqlite.NewRecord(id, text), nil
}

func (d *memoryDAO) Create(ctx context.Context, text string) (*sqlite.Record, error) {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	if err := d.fail(); err != nil {
		return nil, err
	}
	id := d.table.nextID
	d.table.nextID++
	d.table.rows[id] = text
	return sqlite.NewRecord(id, text), nil
}

func (d *memoryDAO) Update(ctx context.Context, id int64, text string) (*sqlite.Record, error) {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	if err := d.fail(); err != nil {
		return nil, err
	}
	d.table.rows[id] = text
	if id >= d.table.nextID {
		d.table.nextID = id + 1
	}
	return sqlite.NewRecord(id, text), nil
}

func (d *memoryDAO) Delete(ctx context.Context, id int64) error {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	if err := d.fail(); err != nil {
		return err
	}
	delete(d.table.rows, id)
	return nil
}

func (d *memoryDAO) Close() error {
	d.table.mu.Lock()
	defer d.table.mu.Unlock()
	d.table.closed++
	return nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

// quietLogger drops every entry.
func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
