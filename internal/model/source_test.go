package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryWeight(t *testing.T) {
	assert.Equal(t, 1.0, CategoryPrimary.Weight())
	assert.Equal(t, 0.9, CategoryFinancial.Weight())
	assert.Equal(t, 0.3, CategorySocial.Weight())
	assert.Equal(t, 0.2, Category("unlisted").Weight())
	assert.Equal(t, 0.2, CategoryAnalytics.Weight())
	assert.Equal(t, 0.2, CategoryProducts.Weight())
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, Priority("bogus").Rank(), PriorityLow.Rank())
}

func TestRunStatusTerminal(t *testing.T) {
	assert.True(t, RunStatusComplete.Terminal())
	assert.True(t, RunStatusFailed.Terminal())
	assert.False(t, RunStatusPending.Terminal())
	assert.False(t, RunStatusDispatching.Terminal())
	assert.False(t, RunStatusAggregating.Terminal())
}
