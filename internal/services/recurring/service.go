// Package recurring detects transactions repeating on a regular cadence:
// groups by normalized description, classifies the inter-occurrence gap as
// weekly, monthly or yearly, and keeps the group only when amounts are
// consistent enough to rule out coincidental description collisions.
package recurring

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bank-ledger-backend/internal/apperrors"
	"bank-ledger-backend/internal/models"
	"bank-ledger-backend/internal/repository"
)

// Tolerance bands for gap classification and the amount-consistency
// cutoff. Conservative literals, pinned by tests.
const (
	weeklyGapDays    = 7.0
	weeklyTolerance  = 2.0
	monthlyGapDays   = 30.0
	monthlyTolerance = 6.0
	yearlyGapDays    = 365.0
	yearlyTolerance  = 30.0

	// maxAmountVariation is the coefficient-of-variation ceiling: groups
	// whose amounts spread wider than 30% of the mean are rejected.
	maxAmountVariation = 0.30

	minOccurrences = 2
)

type Service struct {
	db           *gorm.DB
	patterns     *repository.RecurringRepository
	transactions *repository.TransactionRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:           db,
		patterns:     repository.NewRecurringRepository(db),
		transactions: repository.NewTransactionRepository(db),
	}
}

type DetectResult struct {
	Detected int                       `json:"detected"`
	Patterns []models.RecurringPattern `json:"patterns"`
}

// Detect rebuilds the workspace's recurring patterns from its full
// transaction history. The rebuild is all-or-nothing: links are cleared,
// old patterns dropped and new ones written inside one transaction, so a
// failure leaves the prior state intact.
func (s *Service) Detect(workspaceID uuid.UUID) (*DetectResult, error) {
	txs, err := s.transactions.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]models.Transaction)
	for _, tx := range txs {
		key := NormalizeDescription(tx.Description)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], tx)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &DetectResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		patterns := repository.NewRecurringRepository(tx)
		transactions := repository.NewTransactionRepository(tx)

		if err := transactions.ClearRecurringLinks(workspaceID); err != nil {
			return err
		}
		if err := patterns.DeleteByWorkspace(workspaceID); err != nil {
			return err
		}

		for _, key := range keys {
			group := groups[key]
			if len(group) < minOccurrences {
				continue
			}
			sort.Slice(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

			frequency, ok := classifyFrequency(group)
			if !ok {
				continue
			}
			if !amountsConsistent(group) {
				continue
			}

			pattern := &models.RecurringPattern{
				ID:                 uuid.New(),
				WorkspaceID:        workspaceID,
				DescriptionPattern: key,
				Frequency:          frequency,
				AvgAmount:          averageAmount(group),
				OccurrenceCount:    len(group),
				IsActive:           true,
				CreatedAt:          time.Now(),
				UpdatedAt:          time.Now(),
			}
			if err := patterns.Create(pattern); err != nil {
				return err
			}

			ids := make([]uuid.UUID, len(group))
			for i, member := range group {
				ids[i] = member.ID
			}
			if err := transactions.LinkRecurring(ids, pattern.ID); err != nil {
				return err
			}
			result.Patterns = append(result.Patterns, *pattern)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Detected = len(result.Patterns)
	slog.Info("recurring detection finished",
		"workspace_id", workspaceID, "groups", len(groups), "detected", result.Detected)
	return result, nil
}

// SetActive toggles a pattern between active and inactive.
func (s *Service) SetActive(id uuid.UUID, active bool) (*models.RecurringPattern, error) {
	pattern, err := s.patterns.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		return nil, apperrors.PatternNotFound()
	}
	pattern.IsActive = active
	pattern.UpdatedAt = time.Now()
	if err := s.patterns.Save(pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}

// UpdatePattern edits the descriptive fields only; frequency, average and
// occurrence count always come from detection.
func (s *Service) UpdatePattern(id uuid.UUID, descriptionPattern string) (*models.RecurringPattern, error) {
	pattern, err := s.patterns.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		return nil, apperrors.PatternNotFound()
	}
	pattern.DescriptionPattern = descriptionPattern
	pattern.UpdatedAt = time.Now()
	if err := s.patterns.Save(pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}

// DeletePattern removes a pattern and clears the back-references. The
// transactions themselves are never deleted.
func (s *Service) DeletePattern(id uuid.UUID) error {
	pattern, err := s.patterns.GetByID(id)
	if err != nil {
		return err
	}
	if pattern == nil {
		return apperrors.PatternNotFound()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewTransactionRepository(tx).UnlinkRecurring(id); err != nil {
			return err
		}
		return repository.NewRecurringRepository(tx).Delete(id)
	})
}

func (s *Service) ListPatterns(workspaceID uuid.UUID) ([]models.RecurringPattern, error) {
	return s.patterns.ListByWorkspace(workspaceID)
}

func (s *Service) ListPatternTransactions(id uuid.UUID) ([]models.Transaction, error) {
	pattern, err := s.patterns.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		return nil, apperrors.PatternNotFound()
	}
	return s.transactions.ListByRecurringPattern(id)
}

type Summary struct {
	TotalActive          int             `json:"total_active"`
	EstimatedMonthlyCost decimal.Decimal `json:"estimated_monthly_cost"`
}

// Summary normalizes each active pattern's average amount to a
// monthly-equivalent cost.
func (s *Service) Summary(workspaceID uuid.UUID) (*Summary, error) {
	active, err := s.patterns.ListActive(workspaceID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, pattern := range active {
		total = total.Add(monthlyEquivalent(pattern.AvgAmount, pattern.Frequency))
	}
	return &Summary{
		TotalActive:          len(active),
		EstimatedMonthlyCost: total.Round(2),
	}, nil
}

func monthlyEquivalent(amount decimal.Decimal, frequency string) decimal.Decimal {
	switch frequency {
	case models.FrequencyWeekly:
		return amount.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12))
	case models.FrequencyYearly:
		return amount.Div(decimal.NewFromInt(12))
	default:
		return amount
	}
}

// NormalizeDescription folds case and strips digits, punctuation and
// redundant whitespace so "NETFLIX.COM 3421" and "Netflix.com 9980" land
// in the same group.
func NormalizeDescription(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// classifyFrequency averages the day gaps between consecutive occurrences
// and picks the nearest frequency whose tolerance band contains both the
// average and every individual gap. The per-gap check keeps a steady
// weekly run with one long outage from averaging its way into monthly.
func classifyFrequency(group []models.Transaction) (string, bool) {
	if len(group) < minOccurrences {
		return "", false
	}

	gaps := make([]float64, 0, len(group)-1)
	var totalDays float64
	for i := 1; i < len(group); i++ {
		gap := group[i].Date.Sub(group[i-1].Date).Hours() / 24
		gaps = append(gaps, gap)
		totalDays += gap
	}
	avgGap := totalDays / float64(len(gaps))

	bands := []struct {
		frequency string
		target    float64
		tolerance float64
	}{
		{models.FrequencyWeekly, weeklyGapDays, weeklyTolerance},
		{models.FrequencyMonthly, monthlyGapDays, monthlyTolerance},
		{models.FrequencyYearly, yearlyGapDays, yearlyTolerance},
	}

	best := ""
	bestDistance := math.MaxFloat64
	for _, band := range bands {
		distance := math.Abs(avgGap - band.target)
		if distance > band.tolerance || distance >= bestDistance {
			continue
		}
		if !gapsInBand(gaps, band.target, band.tolerance) {
			continue
		}
		best = band.frequency
		bestDistance = distance
	}
	return best, best != ""
}

func gapsInBand(gaps []float64, target, tolerance float64) bool {
	for _, gap := range gaps {
		if math.Abs(gap-target) > tolerance {
			return false
		}
	}
	return true
}

// amountsConsistent rejects groups whose amounts vary too much relative
// to their mean. Guards against generic descriptions ("transferencia")
// collapsing unrelated transactions into one pattern.
func amountsConsistent(group []models.Transaction) bool {
	amounts := make([]float64, len(group))
	var sum float64
	for i, tx := range group {
		amounts[i] = tx.Amount.InexactFloat64()
		sum += amounts[i]
	}
	mean := sum / float64(len(amounts))
	if mean <= 0 {
		return false
	}

	var variance float64
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}
	stddev := math.Sqrt(variance / float64(len(amounts)))
	return stddev/mean < maxAmountVariation
}

func averageAmount(group []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range group {
		total = total.Add(tx.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(group)))).Round(2)
}
