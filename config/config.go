package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/DiZ-02/millenium-falcon-challenge/job"
	"github.com/DiZ-02/millenium-falcon-challenge/risk"
)

// JobConfig is the job configuration record of spec.md §6: autonomy,
// departure/arrival planet names, and an opaque routes_db locator
// handed to the route store. Field names are matched case-
// insensitively by encoding/json's default behavior; unknown fields
// are rejected via DisallowUnknownFields.
type JobConfig struct {
	Autonomy  int64  `json:"autonomy"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	RoutesDB  string `json:"routes_db"`
}

// BountyHunter is a single hunter sighting record within Communication.
type BountyHunter struct {
	Planet string `json:"planet"`
	Day    int64  `json:"day"`
}

// Communication is the countdown/bounty-hunters record of spec.md §6.
type Communication struct {
	Countdown     int64          `json:"countdown"`
	BountyHunters []BountyHunter `json:"bounty_hunters"`
}

// decodeStrict unmarshals data into dst, rejecting unknown fields and
// trailing garbage — the Go analogue of the original's
// ForbidExtraFieldsModel(extra="forbid").
func decodeStrict(data []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", ErrUnreadable)
	}
	return nil
}

// ParseJobConfig decodes and validates a JobConfig from raw JSON.
func ParseJobConfig(data []byte) (JobConfig, error) {
	var cfg JobConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return JobConfig{}, err
	}
	if cfg.Autonomy <= 0 || cfg.Autonomy >= job.MaxAutonomy {
		return JobConfig{}, fmt.Errorf("%w: autonomy %d", ErrFieldOutOfRange, cfg.Autonomy)
	}
	if cfg.Departure == "" {
		return JobConfig{}, fmt.Errorf("%w: departure must be non-empty", ErrFieldOutOfRange)
	}
	if cfg.Arrival == "" {
		return JobConfig{}, fmt.Errorf("%w: arrival must be non-empty", ErrFieldOutOfRange)
	}
	if cfg.RoutesDB == "" {
		return JobConfig{}, fmt.Errorf("%w: routes_db must be non-empty", ErrFieldOutOfRange)
	}
	return cfg, nil
}

// ParseCommunication decodes and validates a Communication record from
// raw JSON.
func ParseCommunication(data []byte) (Communication, error) {
	var comm Communication
	if err := decodeStrict(data, &comm); err != nil {
		return Communication{}, err
	}
	if comm.Countdown < 0 {
		return Communication{}, fmt.Errorf("%w: countdown %d", ErrFieldOutOfRange, comm.Countdown)
	}
	for _, h := range comm.BountyHunters {
		if h.Planet == "" {
			return Communication{}, fmt.Errorf("%w: bounty hunter planet must be non-empty", ErrFieldOutOfRange)
		}
		if h.Day < 0 {
			return Communication{}, fmt.Errorf("%w: bounty hunter day %d", ErrFieldOutOfRange, h.Day)
		}
	}
	return comm, nil
}

// AsJobParams folds a JobConfig and Communication into job.Params,
// ready for job.Solve.
func AsJobParams(cfg JobConfig, comm Communication) job.Params {
	return job.Params{
		Autonomy:    cfg.Autonomy,
		Countdown:   comm.Countdown,
		Origin:      cfg.Departure,
		Destination: cfg.Arrival,
	}
}

// AsSightings converts Communication's bounty hunter records into
// risk.Sighting values ready for risk.BuildTable.
func (c Communication) AsSightings() []risk.Sighting {
	out := make([]risk.Sighting, len(c.BountyHunters))
	for i, h := range c.BountyHunters {
		out[i] = risk.Sighting{Planet: h.Planet, Day: h.Day}
	}
	return out
}
