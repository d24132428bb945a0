package distribution

import (
	"fmt"
	"strings"

	"github.com/sartorproj/tabstat"
)

// Kind separates continuous densities from discrete mass functions.
type Kind string

const (
	Continuous Kind = "Continuous"
	Discrete   Kind = "Discrete"
)

// Family identifies a distribution family by its display tag.
type Family string

// Continuous families.
const (
	Normal        Family = "Normal"
	Exponential   Family = "Exponential"
	Uniform       Family = "Uniform"
	Gamma         Family = "Gamma"
	LogNormal     Family = "Log-Normal"
	Beta          Family = "Beta"
	Weibull       Family = "Weibull"
	ChiSquare     Family = "Chi-Square"
	Cauchy        Family = "Cauchy"
	TDistribution Family = "T-Distribution"
)

// Discrete families.
const (
	Binomial         Family = "Binomial"
	Poisson          Family = "Poisson"
	Geometric        Family = "Geometric"
	Bernoulli        Family = "Bernoulli"
	NegativeBinomial Family = "Negative Binomial"
	Hypergeometric   Family = "Hypergeometric"
)

var continuousFamilies = []Family{
	Normal, Exponential, Uniform, Gamma, LogNormal,
	Beta, Weibull, ChiSquare, Cauchy, TDistribution,
}

var discreteFamilies = []Family{
	Binomial, Poisson, Geometric, Bernoulli, NegativeBinomial, Hypergeometric,
}

// Families returns every supported family, continuous first.
func Families() []Family {
	all := make([]Family, 0, len(continuousFamilies)+len(discreteFamilies))
	all = append(all, continuousFamilies...)
	return append(all, discreteFamilies...)
}

// FamiliesOf returns the families of the given kind in display order.
func FamiliesOf(kind Kind) []Family {
	var src []Family
	switch kind {
	case Continuous:
		src = continuousFamilies
	case Discrete:
		src = discreteFamilies
	}
	out := make([]Family, len(src))
	copy(out, src)
	return out
}

// Kind returns whether the family is continuous or discrete.
func (f Family) Kind() Kind {
	for _, d := range discreteFamilies {
		if d == f {
			return Discrete
		}
	}
	return Continuous
}

func (f Family) String() string {
	return string(f)
}

// ParseFamily resolves a family tag, ignoring case and surrounding space.
func ParseFamily(tag string) (Family, error) {
	t := strings.TrimSpace(tag)
	for _, f := range Families() {
		if strings.EqualFold(string(f), t) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown distribution family %q", tabstat.ErrInvalidSelection, tag)
}

// ParseKind resolves a kind tag, ignoring case and surrounding space.
func ParseKind(tag string) (Kind, error) {
	t := strings.TrimSpace(tag)
	switch {
	case strings.EqualFold(t, string(Continuous)):
		return Continuous, nil
	case strings.EqualFold(t, string(Discrete)):
		return Discrete, nil
	}
	return "", fmt.Errorf("%w: unknown distribution kind %q", tabstat.ErrInvalidSelection, tag)
}

// Select resolves a family tag that must belong to the given kind tag.
// An empty kind accepts any family.
func Select(kindTag, familyTag string) (Family, error) {
	f, err := ParseFamily(familyTag)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(kindTag) == "" {
		return f, nil
	}
	kind, err := ParseKind(kindTag)
	if err != nil {
		return "", err
	}
	if f.Kind() != kind {
		return "", fmt.Errorf("%w: %s is not a %s distribution", tabstat.ErrInvalidSelection, f, strings.ToLower(string(kind)))
	}
	return f, nil
}
