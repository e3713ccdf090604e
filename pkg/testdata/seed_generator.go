package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/syncproposal"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/auth"
)

// SeedConfig configures marketplace seed data generation
type SeedConfig struct {
	Producers         int
	Clients           int
	TracksPerProducer int
	SalesPerProducer  int
	SyncChance        float64 // 0.0-1.0 (probability a producer has a sync placement)
	WalletChance      float64 // 0.0-1.0 (probability a producer has set a wallet)
	Month             string  // YYYY-MM bucket for completed sales
	Password          string  // login password for all seeded accounts
}

var genres = []string{
	"trap", "lofi", "drill", "house", "synthwave", "boom bap",
	"afrobeats", "rnb", "ambient", "techno",
}

// Track title vocabulary, loosely grouped by mood
var titleParts = struct {
	Adjectives []string
	Nouns      []string
}{
	Adjectives: []string{
		"Midnight", "Golden", "Frozen", "Velvet", "Neon", "Silent",
		"Electric", "Fading", "Hollow", "Crimson", "Lucid", "Restless",
	},
	Nouns: []string{
		"Run", "Hours", "Skyline", "Mirage", "Static", "Bloom",
		"Tides", "Signal", "Echoes", "Motion", "Glass", "Horizon",
	},
}

var artistSuffixes = []string{
	"Beats", "Sound", "Audio", "Waves", "Keys", "Loops", "Tracks",
}

// GenerateArtistName creates a plausible producer alias
func GenerateArtistName() string {
	if rand.Float64() < 0.5 {
		return fmt.Sprintf("%s %s", gofakeit.LastName(), artistSuffixes[rand.Intn(len(artistSuffixes))])
	}
	return fmt.Sprintf("%s%s", gofakeit.Adjective(), gofakeit.NounAbstract())
}

// GenerateTrackTitle creates a track title from the vocabulary
func GenerateTrackTitle() string {
	adj := titleParts.Adjectives[rand.Intn(len(titleParts.Adjectives))]
	noun := titleParts.Nouns[rand.Intn(len(titleParts.Nouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}

// GenerateWallet creates a random 0x-prefixed wallet address
func GenerateWallet() string {
	const hexChars = "0123456789abcdef"
	var b strings.Builder
	b.WriteString("0x")
	for i := 0; i < 40; i++ {
		b.WriteByte(hexChars[rand.Intn(len(hexChars))])
	}
	return b.String()
}

// Seed populates the database with producers, clients, tracks, completed
// sales and sync placements so the payout pipeline has data to work on.
func Seed(ctx context.Context, client *ent.Client, cfg SeedConfig) error {
	if cfg.Password == "" {
		cfg.Password = "tracklane-demo"
	}
	if cfg.Month == "" {
		cfg.Month = time.Now().UTC().AddDate(0, -1, 0).Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", cfg.Month)
	if err != nil {
		return fmt.Errorf("invalid seed month %q: %w", cfg.Month, err)
	}

	passwordHash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	// Clients first so sales have buyers
	buyers := make([]*ent.User, 0, cfg.Clients)
	for i := 0; i < cfg.Clients; i++ {
		buyer, err := client.User.Create().
			SetEmail(fmt.Sprintf("client%d@%s", i+1, gofakeit.DomainName())).
			SetPasswordHash(passwordHash).
			SetName(gofakeit.Name()).
			SetRole(user.RoleClient).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seeding client %d: %w", i+1, err)
		}
		buyers = append(buyers, buyer)
	}
	if len(buyers) == 0 {
		return fmt.Errorf("at least one client is required to seed sales")
	}

	for i := 0; i < cfg.Producers; i++ {
		create := client.User.Create().
			SetEmail(fmt.Sprintf("producer%d@%s", i+1, gofakeit.DomainName())).
			SetPasswordHash(passwordHash).
			SetName(gofakeit.Name()).
			SetArtistName(GenerateArtistName()).
			SetRole(user.RoleProducer).
			SetActive(true)
		if rand.Float64() < cfg.WalletChance {
			create.SetWalletAddress(GenerateWallet())
		}
		producer, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("seeding producer %d: %w", i+1, err)
		}

		tracks := make([]*ent.Track, 0, cfg.TracksPerProducer)
		for j := 0; j < cfg.TracksPerProducer; j++ {
			tr, err := client.Track.Create().
				SetProducerID(producer.ID).
				SetTitle(GenerateTrackTitle()).
				SetGenre(genres[rand.Intn(len(genres))]).
				SetBpm(60 + rand.Intn(120)).
				SetStatus(track.StatusPublished).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seeding track for producer %d: %w", producer.ID, err)
			}
			tracks = append(tracks, tr)
		}
		if len(tracks) == 0 {
			continue
		}

		for j := 0; j < cfg.SalesPerProducer; j++ {
			tr := tracks[rand.Intn(len(tracks))]
			buyer := buyers[rand.Intn(len(buyers))]

			licenseType := sale.LicenseTypeStandard
			amount := tr.StandardPrice
			if rand.Float64() < 0.1 {
				licenseType = sale.LicenseTypeExclusive
				amount = tr.ExclusivePrice
			}

			completedAt := monthStart.Add(time.Duration(rand.Intn(27*24)) * time.Hour)
			_, err := client.Sale.Create().
				SetTrackID(tr.ID).
				SetProducerID(producer.ID).
				SetBuyerID(buyer.ID).
				SetLicenseType(licenseType).
				SetAmount(amount).
				SetStatus(sale.StatusCompleted).
				SetStripeSessionID(fmt.Sprintf("cs_seed_%s", gofakeit.UUID())).
				SetCompletedAt(completedAt).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seeding sale for producer %d: %w", producer.ID, err)
			}
		}

		if rand.Float64() < cfg.SyncChance {
			tr := tracks[rand.Intn(len(tracks))]
			fee := float64(250 + rand.Intn(4750))
			acceptedAt := monthStart.Add(time.Duration(rand.Intn(27*24)) * time.Hour)
			_, err := client.SyncProposal.Create().
				SetProducerID(producer.ID).
				SetTrackID(tr.ID).
				SetProjectName(fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.ProductName())).
				SetFee(fee).
				SetStatus(syncproposal.StatusAccepted).
				SetAcceptedAt(acceptedAt).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seeding sync proposal for producer %d: %w", producer.ID, err)
			}
		}
	}

	return nil
}
