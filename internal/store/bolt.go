package store

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"
)

var bucketEvaluations = []byte("evaluations")

// Bolt is a Store backed by a bbolt file, one JSON value per evaluation.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEvaluations)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init store %s: %w", path, err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Put(_ context.Context, ev Evaluation) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode evaluation %s: %w", ev.ID, err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEvaluations).Put([]byte(ev.ID), data)
	})
}

func (b *Bolt) Get(_ context.Context, id string) (Evaluation, error) {
	var ev Evaluation
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketEvaluations).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &ev)
	})
	return ev, err
}

func (b *Bolt) Delete(_ context.Context, id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket(bucketEvaluations)
		if bk.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return bk.Delete([]byte(id))
	})
}

func (b *Bolt) List(_ context.Context, limit int) ([]Evaluation, error) {
	var out []Evaluation
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEvaluations).ForEach(func(k, v []byte) error {
			var ev Evaluation
			if err := json.Unmarshal(v, &ev); err != nil {
				return fmt.Errorf("decode evaluation %s: %w", k, err)
			}
			out = append(out, ev)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return truncate(out, limit), nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
