// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog ships the static content of the feed, network, jobs,
// messaging, notifications and salary pages. The API exposes none of these,
// so they are embedded as a YAML document.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-pro-network/models"
)

//go:embed catalog.yaml
var embedded []byte

// ErrEmptyCatalog is returned when a document declares no feed categories.
var ErrEmptyCatalog = errors.New("catalog has no feed categories")

// Catalog is the decoded static content.
type Catalog struct {
	FeedCategories []models.FeedCategory  `yaml:"feed_categories"`
	Posts          []models.Post          `yaml:"posts"`
	Recommended    []models.Person        `yaml:"recommended"`
	Communities    []models.Community     `yaml:"communities"`
	Connections    []models.Person        `yaml:"connections"`
	Jobs           []models.Job           `yaml:"jobs"`
	Conversations  []models.Conversation  `yaml:"conversations"`
	Notifications  []models.Notification  `yaml:"notifications"`
	Salaries       []models.SalaryInsight `yaml:"salaries"`
}

// Default decodes the embedded document.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.FeedCategories) == 0 {
		return nil, ErrEmptyCatalog
	}

	return &c, nil
}
