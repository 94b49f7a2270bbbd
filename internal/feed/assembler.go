package feed

import (
	"context"
	"math"

	"bbqbuddy/backend/internal/logger"

	"github.com/sirupsen/logrus"
)

// DefaultPageSize is the number of sessions on one profile page.
const DefaultPageSize = 10

// Assembler builds enriched session pages. It issues at most three repository
// calls per page: the page itself and two batched yummy lookups.
type Assembler struct {
	repo     Repository
	pageSize int
	log      *logrus.Entry
}

// NewAssembler returns an assembler over repo. A non-positive pageSize means DefaultPageSize.
func NewAssembler(repo Repository, pageSize int) *Assembler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Assembler{
		repo:     repo,
		pageSize: pageSize,
		log:      logger.Log.WithField("component", "feed"),
	}
}

// PageSize returns the configured page size.
func (a *Assembler) PageSize() int {
	return a.pageSize
}

// PageRange returns the inclusive row range of a zero-based page. Pages whose
// rows would lie beyond math.MaxInt yield an empty range (to < from).
func PageRange(page, size int) (from, to int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || page > (math.MaxInt-size)/size {
		return 0, -1
	}
	from = page * size
	return from, from + size - 1
}

// UserSessions returns one page of targetUserID's sessions as seen by viewerID.
// An empty viewerID is an anonymous viewer. Read failures are logged and
// yield an empty page; the result is never nil.
func (a *Assembler) UserSessions(ctx context.Context, targetUserID string, page int, viewerID string) []Entry {
	if targetUserID == "" {
		return []Entry{}
	}

	from, to := PageRange(page, a.pageSize)
	sessions, err := a.repo.ListSessions(ctx, SessionQuery{
		OwnerID: targetUserID,
		From:    from,
		To:      to,
	})
	if err != nil {
		a.log.WithError(err).WithFields(logrus.Fields{
			"user_id": targetUserID,
			"page":    page,
		}).Error("Error fetching user sessions")
		return []Entry{}
	}

	entries := a.Enrich(ctx, sessions, viewerID)
	Sort(entries)
	return entries
}

// Enrich attaches owner and engagement fields to sessions, keeping their order.
// Aggregate read failures degrade to zero counts and no reactions.
func (a *Assembler) Enrich(ctx context.Context, sessions []Session, viewerID string) []Entry {
	if len(sessions) == 0 {
		return []Entry{}
	}

	ids := sessionIDs(sessions)
	counts := a.yummyCounts(ctx, ids)
	yummied := a.viewerYummies(ctx, ids, viewerID)

	entries := make([]Entry, 0, len(sessions))
	for _, s := range sessions {
		e := Entry{
			Session:  s,
			Username: UnknownUsername,
		}
		if s.Owner != nil {
			if s.Owner.Username != nil && *s.Owner.Username != "" {
				e.Username = *s.Owner.Username
			}
			e.AvatarURL = s.Owner.AvatarURL
		}

		e.IsOwnSession = viewerID != "" && viewerID == s.UserID
		e.YummyCount = counts[s.ID]
		_, e.HasYummied = yummied[s.ID]
		e.CanYummy = viewerID != "" && !e.IsOwnSession
		entries = append(entries, e)
	}
	return entries
}

func sessionIDs(sessions []Session) []string {
	seen := make(map[string]struct{}, len(sessions))
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		ids = append(ids, s.ID)
	}
	return ids
}

func (a *Assembler) yummyCounts(ctx context.Context, ids []string) map[string]int {
	counts := make(map[string]int, len(ids))

	edges, err := a.repo.ListYummies(ctx, YummyQuery{SessionIDs: ids})
	if err != nil {
		a.log.WithError(err).Error("Error fetching yummy counts")
		return counts
	}
	for _, e := range edges {
		counts[e.SessionID]++
	}
	return counts
}

func (a *Assembler) viewerYummies(ctx context.Context, ids []string, viewerID string) map[string]struct{} {
	yummied := make(map[string]struct{})
	if viewerID == "" {
		return yummied
	}

	edges, err := a.repo.ListYummies(ctx, YummyQuery{SessionIDs: ids, UserID: viewerID})
	if err != nil {
		a.log.WithError(err).WithField("viewer_id", viewerID).Error("Error fetching viewer yummies")
		return yummied
	}
	for _, e := range edges {
		yummied[e.SessionID] = struct{}{}
	}
	return yummied
}
