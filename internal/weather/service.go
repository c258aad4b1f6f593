package weather

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
)

// ErrSectionUnavailable means the stored provider response does not contain
// the requested section.
var ErrSectionUnavailable = errors.New("no data available")

// Paths into the provider response tree, as Weatherstack lays it out.
var (
	astronomyPath  = []string{"current", "astro"}
	locationPath   = []string{"location"}
	airQualityPath = []string{"current", "air_quality"}
)

// Service coordinates provider lookups and record storage.
type Service struct {
	store    Store
	provider Provider
}

func NewService(store Store, provider Provider) *Service {
	return &Service{store: store, provider: provider}
}

// Create fetches current weather for location, combines it with the caller's
// input under a fresh id, and stores the result. Nothing is stored when the
// provider call fails.
func (s *Service) Create(ctx context.Context, date, location, notes string) (Record, error) {
	payload, err := s.provider.Current(ctx, location)
	if err != nil {
		log.Printf("provider %s lookup failed for %q: %v", s.provider.Name(), location, err)
		return Record{}, err
	}

	rec := Record{
		ID:               uuid.NewString(),
		Date:             date,
		Location:         location,
		Notes:            notes,
		ProviderResponse: payload,
	}
	s.store.Put(rec)
	return rec, nil
}

// Get returns the full stored record.
func (s *Service) Get(id string) (Record, error) {
	return s.store.Get(id)
}

// Astronomy returns the astro block of the stored provider response.
func (s *Service) Astronomy(id string) (Document, error) {
	return s.section(id, astronomyPath...)
}

// PreciseLocation returns the provider's resolved location block.
func (s *Service) PreciseLocation(id string) (Document, error) {
	return s.section(id, locationPath...)
}

// AirQuality returns the air quality block of the stored provider response.
func (s *Service) AirQuality(id string) (Document, error) {
	return s.section(id, airQualityPath...)
}

// Count reports how many records are stored.
func (s *Service) Count() int {
	return s.store.Len()
}

func (s *Service) section(id string, path ...string) (Document, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	section, ok := rec.ProviderResponse.Section(path...)
	if !ok {
		return nil, ErrSectionUnavailable
	}
	return section, nil
}
