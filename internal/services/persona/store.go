package persona

import (
	"context"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

// OpenInput selects a member of a stored persona's family by index
type OpenInput struct {
	PersonaID   string
	MemberIndex int
	Seed        int64
}

// Validate checks the input for programmer errors
func (in *OpenInput) Validate() error {
	if in == nil {
		return perr.InvalidArgument("open input is required")
	}
	if in.PersonaID == "" {
		return perr.InvalidArgument("persona ID is required")
	}
	if in.MemberIndex < 0 {
		return perr.InvalidArgumentf("member index %d is negative", in.MemberIndex)
	}
	return nil
}

func (s *service) requireRepository() error {
	if s.repository == nil {
		return perr.Internalf("persona repository is not configured")
	}
	return nil
}

// Create generates and stores a persona
func (s *service) Create(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := s.requireRepository(); err != nil {
		return nil, err
	}
	out, err := s.Generate(input)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, out.Persona); err != nil {
		return nil, perr.Wrap(err, "failed to store persona")
	}
	return out, nil
}

// Open loads the origin, navigates to the selected member and stores the
// new persona
func (s *service) Open(ctx context.Context, input *OpenInput) (*GenerateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireRepository(); err != nil {
		return nil, err
	}

	origin, err := s.repository.Get(ctx, input.PersonaID)
	if err != nil {
		return nil, perr.Wrap(err, "failed to load origin persona")
	}
	members := origin.Character.Family
	if input.MemberIndex >= len(members) {
		return nil, perr.InvalidArgumentf("member index %d out of range, family has %d members",
			input.MemberIndex, len(members)).WithMeta("persona_id", origin.ID)
	}

	out, err := s.Navigate(&NavigateInput{
		Origin: origin,
		Member: &members[input.MemberIndex],
		Seed:   input.Seed,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, out.Persona); err != nil {
		return nil, perr.Wrap(err, "failed to store relative")
	}
	return out, nil
}

// Get loads a stored persona
func (s *service) Get(ctx context.Context, id string) (*entities.Persona, error) {
	if id == "" {
		return nil, perr.InvalidArgument("persona ID is required")
	}
	if err := s.requireRepository(); err != nil {
		return nil, err
	}
	p, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, perr.Wrapf(err, "failed to get persona %s", id)
	}
	return p, nil
}
