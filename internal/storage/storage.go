// Package storage keeps the office aggregate somewhere durable. Every
// backend loads and saves the whole aggregate at once.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"alkhair/pkg/types"
)

// Backend is satisfied by every storage type in this package.
type Backend interface {
	Load(ctx context.Context) (*types.AppData, error)
	Save(ctx context.Context, data *types.AppData) error
}

// Table-backed stores keep one row per collection, keyed by bucket name.
const (
	bucketCases      = "cases"
	bucketDonations  = "donations"
	bucketExpenses   = "expenses"
	bucketVolunteers = "volunteers"
	bucketAffidavits = "affidavits"
)

var buckets = []string{bucketCases, bucketDonations, bucketExpenses, bucketVolunteers, bucketAffidavits}

type bucketPayload struct {
	name    string
	payload []byte
}

func encodeBuckets(data *types.AppData) ([]bucketPayload, error) {
	out := make([]bucketPayload, 0, len(buckets))
	for _, name := range buckets {
		var (
			payload []byte
			err     error
		)
		switch name {
		case bucketCases:
			payload, err = json.Marshal(data.Cases)
		case bucketDonations:
			payload, err = json.Marshal(data.Donations)
		case bucketExpenses:
			payload, err = json.Marshal(data.Expenses)
		case bucketVolunteers:
			payload, err = json.Marshal(data.Volunteers)
		case bucketAffidavits:
			payload, err = json.Marshal(data.Affidavits)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		out = append(out, bucketPayload{name: name, payload: payload})
	}
	return out, nil
}

// decodeBucket fills the matching collection of data. Unknown buckets are
// ignored.
func decodeBucket(data *types.AppData, name string, payload []byte) error {
	var err error
	switch name {
	case bucketCases:
		err = json.Unmarshal(payload, &data.Cases)
	case bucketDonations:
		err = json.Unmarshal(payload, &data.Donations)
	case bucketExpenses:
		err = json.Unmarshal(payload, &data.Expenses)
	case bucketVolunteers:
		err = json.Unmarshal(payload, &data.Volunteers)
	case bucketAffidavits:
		err = json.Unmarshal(payload, &data.Affidavits)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func decodeDocument(payload []byte) (*types.AppData, error) {
	data := new(types.AppData)
	if err := json.Unmarshal(payload, data); err != nil {
		return nil, fmt.Errorf("failed to decode office data: %w", err)
	}
	data.Normalize()
	return data, nil
}

func encodeDocument(data *types.AppData) ([]byte, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode office data: %w", err)
	}
	return payload, nil
}
