package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank_Ordered(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		assert.Greater(t, Severities[i].Rank(), Severities[i-1].Rank())
	}
	assert.Equal(t, 0, Severity("apocalyptic").Rank())
	assert.False(t, Severity("").Valid())
}

func TestSeverityHeatWeight_DefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, SeverityLow.HeatWeight())
	assert.Equal(t, 4, SeverityCritical.HeatWeight())
	assert.Equal(t, 1, Severity("unknown").HeatWeight())
}

func TestIncidentType_ColorAndLabel(t *testing.T) {
	for _, typ := range IncidentTypes {
		assert.True(t, typ.Valid(), typ)
		assert.NotEmpty(t, typ.Color())
	}
	assert.Equal(t, "#ff4444", TypeTrafficAccident.Color())
	assert.Equal(t, "#9E9E9E", IncidentType("meteor").Color())
	assert.False(t, IncidentType("meteor").Valid())
	assert.Equal(t, "TRAFFIC ACCIDENT", TypeTrafficAccident.Label())
	assert.Equal(t, "OTHER", IncidentType("").Label())
}

func TestIncidentPatch_Apply(t *testing.T) {
	incident := &Incident{Status: StatusActive, Severity: SeverityLow, Description: "old"}
	resolved := StatusResolved
	desc := "new"

	patch := IncidentPatch{Status: &resolved, Description: &desc}
	assert.False(t, patch.Empty())
	patch.Apply(incident)

	assert.Equal(t, StatusResolved, incident.Status)
	assert.Equal(t, SeverityLow, incident.Severity)
	assert.Equal(t, "new", incident.Description)
	assert.True(t, IncidentPatch{}.Empty())
}
