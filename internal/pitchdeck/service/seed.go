package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/domain"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"gopkg.in/yaml.v3"
)

// SeedFile is a YAML fixture of demo accounts and pitches.
//
//	users:
//	  - name: Ada Founder
//	    email: ada@example.com
//	    password: changeme
//	    role: founder
//	pitches:
//	  - founder: ada@example.com
//	    name: Acme
//	    description: Rockets for everyone
//	    industry: Aerospace
//	    stage: Seed
type SeedFile struct {
	Users   []SeedUser  `yaml:"users"`
	Pitches []SeedPitch `yaml:"pitches"`
}

type SeedUser struct {
	Name                  string            `yaml:"name"`
	Email                 string            `yaml:"email"`
	Password              string            `yaml:"password"`
	Role                  string            `yaml:"role"`
	Bio                   string            `yaml:"bio,omitempty"`
	Location              string            `yaml:"location,omitempty"`
	InvestmentPreferences *PreferencesInput `yaml:"investmentPreferences,omitempty"`
}

type SeedPitch struct {
	// Founder is the owning founder's email.
	Founder    string `yaml:"founder"`
	PitchInput `yaml:",inline"`
}

type SeedReport struct {
	UsersCreated   int
	UsersSkipped   int
	PitchesCreated int
	PitchesSkipped int
}

// LoadSeedFile reads a fixture. Unknown keys are rejected.
func LoadSeedFile(path string) (SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedFile{}, err
	}
	defer func() { _ = f.Close() }()
	return DecodeSeed(f)
}

func DecodeSeed(r io.Reader) (SeedFile, error) {
	var seed SeedFile
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return SeedFile{}, nil
		}
		return SeedFile{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// Seeder creates fixture records through the regular services so they pass
// the same validation as API traffic. Existing emails and pitch names are
// skipped, which makes seeding safe to repeat on every start.
type Seeder struct {
	Store   store.Store
	Auth    *AuthService
	Pitches *PitchService
}

func (s *Seeder) Apply(ctx context.Context, seed SeedFile) (SeedReport, error) {
	log := slogx.FromContext(ctx)
	var report SeedReport

	for i, su := range seed.Users {
		email := NormalizeEmail(su.Email)
		_, err := s.Store.Users().GetUserByEmail(ctx, email)
		if err == nil {
			report.UsersSkipped++
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return report, err
		}

		var sess Session
		if domain.Role(strings.TrimSpace(su.Role)) == domain.RoleInvestor {
			sess, err = s.Auth.SignupInvestor(ctx, InvestorSignupInput{
				Name:                  su.Name,
				Email:                 email,
				Password:              su.Password,
				InvestmentPreferences: su.InvestmentPreferences,
			})
		} else {
			sess, err = s.Auth.Signup(ctx, SignupInput{
				Name:     su.Name,
				Email:    email,
				Password: su.Password,
				Role:     su.Role,
			})
		}
		if err != nil {
			return report, fmt.Errorf("seed user %d (%s): %w", i, email, err)
		}

		if su.Bio != "" || su.Location != "" {
			in := ProfileInput{}
			if su.Bio != "" {
				in.Bio = &su.Bio
			}
			if su.Location != "" {
				in.Location = &su.Location
			}
			if _, err := s.Auth.UpdateProfile(ctx, sess.Token.Claims, in); err != nil {
				return report, fmt.Errorf("seed user %d (%s) profile: %w", i, email, err)
			}
		}
		report.UsersCreated++
	}

	for i, sp := range seed.Pitches {
		email := NormalizeEmail(sp.Founder)
		founder, err := s.Store.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return report, fmt.Errorf("seed pitch %d: founder %q: %w", i, email, ErrUserNotFound)
			}
			return report, err
		}
		if founder.Role != domain.RoleFounder {
			return report, fmt.Errorf("seed pitch %d: %q is a %s, not a founder", i, email, founder.Role)
		}

		exists, err := s.Store.Pitches().PitchExists(ctx, founder.ID, strings.TrimSpace(sp.Name))
		if err != nil {
			return report, err
		}
		if exists {
			report.PitchesSkipped++
			continue
		}

		if _, err := s.Pitches.Create(ctx, founder.ID, sp.PitchInput); err != nil {
			return report, fmt.Errorf("seed pitch %d (%s): %w", i, sp.Name, err)
		}
		report.PitchesCreated++
	}

	log.Info("seed applied",
		slog.Int("users_created", report.UsersCreated),
		slog.Int("users_skipped", report.UsersSkipped),
		slog.Int("pitches_created", report.PitchesCreated),
		slog.Int("pitches_skipped", report.PitchesSkipped),
	)
	return report, nil
}
