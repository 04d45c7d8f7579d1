// Package fakedata generates plausible Russian student names and random
// e-mail addresses from an explicit, seedable source.
package fakedata

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

type Person struct {
	Gender     Gender
	LastName   string
	FirstName  string
	MiddleName string
}

// Provider is not safe for concurrent use.
type Provider struct {
	seed  uint64
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New returns a provider seeded with seed. Seed 0 picks a time based seed.
func New(seed uint64) *Provider {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Provider{
		seed:  seed,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
		faker: gofakeit.New(seed),
	}
}

func (p *Provider) Seed() uint64 { return p.seed }

// IntN returns a number in [0, n). n must be positive.
func (p *Provider) IntN(n int) int { return p.rng.IntN(n) }

func (p *Provider) Gender() Gender {
	if p.rng.IntN(2) == 0 {
		return Male
	}
	return Female
}

func (p *Provider) Person() Person {
	return p.PersonOf(p.Gender())
}

func (p *Provider) PersonOf(g Gender) Person {
	if g == Female {
		return Person{
			Gender:     Female,
			LastName:   pick(p.rng, lastNamesFemale),
			FirstName:  pick(p.rng, firstNamesFemale),
			MiddleName: pick(p.rng, middleNamesFemale),
		}
	}
	return Person{
		Gender:     Male,
		LastName:   pick(p.rng, lastNamesMale),
		FirstName:  pick(p.rng, firstNamesMale),
		MiddleName: pick(p.rng, middleNamesMale),
	}
}

// Email returns one random address such as "lorinebaumbach@hills.com".
func (p *Provider) Email() string {
	return p.faker.Email()
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
