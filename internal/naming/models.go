package naming

import (
	"fmt"
	"strings"
)

var reorderTable = Table{Name: "reordering", Rules: []Rule{
	// Count-sum flags sort after the network shorthand.
	computed(`(-sum)(-l_\d+-h_[\d_]+)`, func(m []string) string {
		return m[2] + m[1]
	}),
}}

var modelFamilyTable = Table{Name: "model families", Rules: []Rule{
	computed(`GMVAE/gaussian_mixture-c_(\d+)-?p?_?(\w+)?`, func(m []string) string {
		if m[2] == "" {
			return fmt.Sprintf("GMVAE(%s)", m[1])
		}
		return fmt.Sprintf("GMVAE(%s; %s)", m[1], m[2])
	}),
	computed(`VAE/([\w-]+)`, func(m []string) string {
		return fmt.Sprintf("VAE(%s)", m[1])
	}),
	literal(`-parameterised`, ", PLP"),
	computed(`-ia_(\w+)-ga_(\w+)`, func(m []string) string {
		if m[1] == m[2] {
			return fmt.Sprintf(", %s", m[1])
		}
		return fmt.Sprintf(", i: %s, g: %s", m[1], m[2])
	}),
}}

var secondaryModelFamilyTable = Table{Name: "secondary model families", Rules: []Rule{
	computed(`gaussian_mixture-c_(\d+)`, func(m []string) string {
		return fmt.Sprintf("GM(%s)", m[1])
	}),
	computed(`-ia_(\w+)`, func(m []string) string {
		return fmt.Sprintf(", i: %s", m[1])
	}),
	computed(`-ga_(\w+)`, func(m []string) string {
		return fmt.Sprintf(", g: %s", m[1])
	}),
}}

var distributionModifierTable = Table{Name: "distribution modifiers", Rules: []Rule{
	literal(`constrained_poisson`, "CP"),
	literal(`zero_inflated_`, "ZI"),
	computed(`/(\w+)-k_(\d+)`, func(m []string) string {
		return fmt.Sprintf("/PC%s(%s)", m[1], m[2])
	}),
}}

var distributionTable = Table{Name: "distributions", Rules: []Rule{
	literal(`gaussian`, "G"),
	literal(`bernoulli`, "B"),
	literal(`poisson`, "P"),
	literal(`negative_binomial`, "NB"),
	literal(`lomax`, "L"),
	literal(`pareto`, "Pa"),
}}

var networkTable = Table{Name: "network architectures", Rules: []Rule{
	// l_2-h_100_100 reads as hidden units by latent dimension: 100×100×2.
	computed(`l_(\d+)-h_([\d_]+)`, func(m []string) string {
		return fmt.Sprintf("%s×%s", strings.ReplaceAll(m[2], "_", "×"), m[1])
	}),
}}

var samplingTable = Table{Name: "sampling counts", Rules: []Rule{
	computed(`-mc_(\d+)`, func(m []string) string {
		if m[1] == "1" {
			return ""
		}
		return fmt.Sprintf("-%s MC samples", m[1])
	}),
	computed(`-iw_(\d+)`, func(m []string) string {
		if m[1] == "1" {
			return ""
		}
		return fmt.Sprintf("-%s IW samples", m[1])
	}),
}}

var checkpointVersionTable = Table{Name: "checkpoint versions", Rules: []Rule{
	computed(`e_(\d+)-?(\w+)?`, func(m []string) string {
		if m[2] == "" {
			return fmt.Sprintf("%s epochs", m[1])
		}
		return fmt.Sprintf("%s epochs (%s)", m[1], m[2])
	}),
	literal(`best_model`, "*"),
	literal(`early_stopping`, "ES"),
}}

var miscellaneousTable = Table{Name: "miscellaneous flags", Rules: []Rule{
	literal(`sum`, "CS"),
	literal(`-kl`, ""),
	literal(`bn`, "BN"),
	computed(`dropout_([\d._]+)`, func(m []string) string {
		return fmt.Sprintf("dropout: %s", strings.ReplaceAll(m[1], "_", ", "))
	}),
	computed(`wu_(\d+)`, func(m []string) string {
		return fmt.Sprintf("WU(%s)", m[1])
	}),
}}

var modelTables = []Table{
	reorderTable,
	modelFamilyTable,
	secondaryModelFamilyTable,
	distributionModifierTable,
	distributionTable,
	networkTable,
	samplingTable,
	checkpointVersionTable,
	miscellaneousTable,
}

// ModelTitle formats a model directory identifier for display.
func ModelTitle(name string) string {
	return Format(name, modelTables)
}
