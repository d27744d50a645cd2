package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/artem13815/resumeai/pkg/kvstore"
)

// UnlimitedExpiry marks a PRO grant with no expiry date.
const UnlimitedExpiry = "unlimited"

// Grant is a PRO entitlement for one account. Expires is either
// UnlimitedExpiry or an RFC3339 timestamp.
type Grant struct {
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	Expires   string    `json:"expires"`
	GrantedAt time.Time `json:"grantedAt"`
}

// Status is what callers check before invoking the analysis pipeline. The
// pipeline itself never enforces quotas.
type Status struct {
	Pro        bool `json:"pro"`
	UsedToday  int  `json:"usedToday"`
	DailyLimit int  `json:"dailyLimit"`
	Remaining  int  `json:"remaining"`
}

// Service tracks per-day scan counters and PRO entitlements in the KV
// store, mirroring the daily counter that resets on date change.
type Service struct {
	kv         kvstore.Store
	dailyLimit int
	now        func() time.Time
}

func New(kv kvstore.Store, dailyLimit int) *Service {
	return &Service{kv: kv, dailyLimit: dailyLimit, now: time.Now}
}

func grantKey(email string) string { return "pro:" + email }

func (s *Service) counterKey(email string) string {
	return "scans:" + email + ":" + s.now().UTC().Format("2006-01-02")
}

// Status reports the caller's entitlement and today's usage.
func (s *Service) Status(ctx context.Context, email string) (Status, error) {
	pro, err := s.isPro(ctx, email)
	if err != nil {
		return Status{}, err
	}
	used, err := s.usedToday(ctx, email)
	if err != nil {
		return Status{}, err
	}
	st := Status{Pro: pro, UsedToday: used, DailyLimit: s.dailyLimit}
	if pro {
		st.Remaining = -1 // unlimited
	} else if st.Remaining = s.dailyLimit - used; st.Remaining < 0 {
		st.Remaining = 0
	}
	return st, nil
}

// Allow reports whether the caller may run one more scan today.
func (s *Service) Allow(ctx context.Context, email string) (bool, error) {
	st, err := s.Status(ctx, email)
	if err != nil {
		return false, err
	}
	return st.Pro || st.Remaining > 0, nil
}

// Record increments today's counter. PRO accounts are not counted.
func (s *Service) Record(ctx context.Context, email string) error {
	pro, err := s.isPro(ctx, email)
	if err != nil || pro {
		return err
	}
	used, err := s.usedToday(ctx, email)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.counterKey(email), []byte(strconv.Itoa(used+1)))
}

// GrantPro stores (or replaces) a PRO entitlement.
func (s *Service) GrantPro(ctx context.Context, g Grant) error {
	if g.Email == "" {
		return errors.New("quota: grant needs an email")
	}
	if g.GrantedAt.IsZero() {
		g.GrantedAt = s.now().UTC()
	}
	if g.Expires == "" {
		g.Expires = UnlimitedExpiry
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("quota: marshal grant: %w", err)
	}
	return s.kv.Set(ctx, grantKey(g.Email), raw)
}

// RevokePro removes an entitlement.
func (s *Service) RevokePro(ctx context.Context, email string) error {
	return s.kv.Delete(ctx, grantKey(email))
}

func (s *Service) isPro(ctx context.Context, email string) (bool, error) {
	raw, err := s.kv.Get(ctx, grantKey(email))
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var g Grant
	if err := json.Unmarshal(raw, &g); err != nil {
		return false, fmt.Errorf("quota: unmarshal grant: %w", err)
	}
	if g.Expires == UnlimitedExpiry {
		return true, nil
	}
	expiry, err := time.Parse(time.RFC3339, g.Expires)
	if err != nil {
		// A grant we cannot parse never unlocks anything.
		return false, nil
	}
	return expiry.After(s.now()), nil
}

func (s *Service) usedToday(ctx context.Context, email string) (int, error) {
	raw, err := s.kv.Get(ctx, s.counterKey(email))
	if errors.Is(err, kvstore.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, nil
	}
	return n, nil
}
