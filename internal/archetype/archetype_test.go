package archetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_TableShape(t *testing.T) {
	r := Builtin()
	assert.Equal(t, All, r.IDs())

	for _, id := range All {
		def, ok := r.Get(id)
		require.True(t, ok, "missing definition for %s", id)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.PrimaryMode)
		assert.NotEmpty(t, def.Patterns)
		assert.NotEmpty(t, def.Titles["default"], "archetype %s has no default title", id)
	}
}

func TestSynthesize_KnownDomainTitle(t *testing.T) {
	p, err := Builtin().Synthesize(Adversarial, "security", "review the session handling")
	require.NoError(t, err)

	assert.Equal(t, Adversarial, p.ArchetypeID)
	assert.Equal(t, "security", p.Domain)
	assert.Equal(t, "Red Team Operator", p.Title)
	assert.Contains(t, p.Instructions, "You are a Red Team Operator with deep expertise in security analysis.")
	assert.Contains(t, p.Instructions, "destructive_analysis methodology")
	assert.Contains(t, p.Instructions, "Attack Surface Mapping")
	assert.Contains(t, p.Instructions, "review the session handling")
	assert.Contains(t, p.Instructions, "confidence score (0.0-1.0)")
}

func TestSynthesize_UnknownDomainFallsBackToDefaultTitle(t *testing.T) {
	p, err := Builtin().Synthesize(Theoretical, "archaeology", "date the artifact")
	require.NoError(t, err)
	assert.Equal(t, "Domain Theorist", p.Title)
}

func TestSynthesize_UnknownArchetype(t *testing.T) {
	_, err := Builtin().Synthesize("ARC-XX", "security", "task")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestSynthesize_Deterministic(t *testing.T) {
	a, err := Builtin().Synthesize(Strategic, "crypto", "assess the handshake")
	require.NoError(t, err)
	b, err := Builtin().Synthesize(Strategic, "crypto", "assess the handshake")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComposePanel(t *testing.T) {
	r := Builtin()

	t.Run("required ids lead, table order fills", func(t *testing.T) {
		panel := r.ComposePanel("security", 4, []ID{Adversarial, QualityAssure})
		assert.Equal(t, []ID{Adversarial, QualityAssure, Theoretical, Implementation}, panel)
	})

	t.Run("size caps at table size", func(t *testing.T) {
		panel := r.ComposePanel("general", 7, nil)
		assert.Equal(t, All, panel)
	})

	t.Run("unknown and duplicate required ids are skipped", func(t *testing.T) {
		panel := r.ComposePanel("general", 3, []ID{"ARC-XX", Strategic, Strategic})
		assert.Equal(t, []ID{Strategic, Theoretical, Adversarial}, panel)
	})

	t.Run("zero size yields empty panel", func(t *testing.T) {
		assert.Empty(t, r.ComposePanel("general", 0, []ID{Theoretical}))
	})
}

func TestHumanizePattern(t *testing.T) {
	assert.Equal(t, "First Principles Decomposition", humanizePattern("first_principles_decomposition"))
	assert.Equal(t, "Threat Modeling", humanizePattern("threat_modeling"))
	assert.Equal(t, "Plain", humanizePattern("plain"))
}

func TestSynthesize_PatternsAreCopies(t *testing.T) {
	p, err := Builtin().Synthesize(QualityAssure, "legal", "t")
	require.NoError(t, err)
	p.Patterns[0] = "tampered"

	def, _ := Builtin().Get(QualityAssure)
	assert.False(t, strings.HasPrefix(def.Patterns[0], "tampered"))
}
