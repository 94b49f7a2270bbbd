package client

import (
	"context"

	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/optimistic"
)

// YummyState is what a yummy control displays.
type YummyState struct {
	Yummied bool
	Count   int
}

// YummyButton toggles the viewer's yummy on one session. The shown state flips
// at once and rolls back if the request fails; clicks made while a request is
// running are ignored.
type YummyButton struct {
	client    *Client
	sessionID string
	guard     optimistic.Guard
	state     *optimistic.Toggle[YummyState]
}

func NewYummyButton(c *Client, sessionID string, initial YummyState) *YummyButton {
	return &YummyButton{
		client:    c,
		sessionID: sessionID,
		state:     optimistic.NewToggle(initial),
	}
}

// YummyButtonFor builds the control for a feed entry.
func YummyButtonFor(c *Client, entry feed.Entry) *YummyButton {
	return NewYummyButton(c, entry.ID, YummyState{Yummied: entry.HasYummied, Count: entry.YummyCount})
}

// Click flips the yummy. ran is false when the click was dropped.
func (b *YummyButton) Click(ctx context.Context) (ran bool, err error) {
	return b.guard.Do(func() error {
		next := b.state.Value()
		if next.Yummied {
			next.Yummied, next.Count = false, max(next.Count-1, 0)
		} else {
			next.Yummied, next.Count = true, next.Count+1
		}

		return b.state.Apply(next, func() error {
			if next.Yummied {
				return b.client.Yummy(ctx, b.sessionID)
			}
			return b.client.Unyummy(ctx, b.sessionID)
		})
	})
}

func (b *YummyButton) State() YummyState {
	return b.state.Value()
}

func (b *YummyButton) Pending() bool {
	return b.guard.InFlight()
}

// FollowButton toggles whether the viewer follows one user.
type FollowButton struct {
	client *Client
	userID string
	guard  optimistic.Guard
	state  *optimistic.Toggle[bool]
}

func NewFollowButton(c *Client, userID string, following bool) *FollowButton {
	return &FollowButton{
		client: c,
		userID: userID,
		state:  optimistic.NewToggle(following),
	}
}

// Click follows or unfollows. ran is false when the click was dropped.
func (b *FollowButton) Click(ctx context.Context) (ran bool, err error) {
	return b.guard.Do(func() error {
		next := !b.state.Value()
		return b.state.Apply(next, func() error {
			if next {
				return b.client.Follow(ctx, b.userID)
			}
			return b.client.Unfollow(ctx, b.userID)
		})
	})
}

func (b *FollowButton) Following() bool {
	return b.state.Value()
}

func (b *FollowButton) Pending() bool {
	return b.guard.InFlight()
}
