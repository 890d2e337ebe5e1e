package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"shopsync-backend/models"
	"shopsync-backend/store"
)

const inviteTTL = 7 * 24 * time.Hour

var ErrInvitesUnavailable = errors.New("invitations unavailable: redis not configured")

// Invite is the redis payload behind an invitation token.
type Invite struct {
	GroupUid  string `json:"group_uid"`
	InvitedBy string `json:"invited_by"`
	Email     string `json:"email"`
}

// Invitations stores invite tokens in redis with a TTL and emails the join
// link. One pending invite per (group, email); re-inviting refreshes it.
type Invitations struct {
	rdb      *redis.Client
	notifier *Notifier
}

func NewInvitations(rdb *redis.Client, notifier *Notifier) *Invitations {
	return &Invitations{rdb: rdb, notifier: notifier}
}

func (s *Invitations) Enabled() bool {
	return s.rdb != nil
}

// Create issues a token for email to join group and sends the invitation
// email in the background.
func (s *Invitations) Create(ctx context.Context, group *models.Group, inviter *models.UserProfile, email string) (string, error) {
	if s.rdb == nil {
		return "", ErrInvitesUnavailable
	}

	// Reuse the pending token for this group+email if one exists.
	dedupeKey := fmt.Sprintf("invite_pending:%s:%s", group.Uid, email)
	if token, err := s.rdb.Get(ctx, dedupeKey).Result(); err == nil && token != "" {
		log.Printf("⚠️  Invitation already pending for %s in group %s", email, group.Uid)
		return token, nil
	}

	token, err := store.NewKey()
	if err != nil {
		return "", fmt.Errorf("%w: invite token: %v", store.ErrTaskFailed, err)
	}

	payload, err := json.Marshal(Invite{GroupUid: group.Uid, InvitedBy: inviter.Uid, Email: email})
	if err != nil {
		return "", fmt.Errorf("%w: invite payload: %v", store.ErrTaskFailed, err)
	}
	if err := s.rdb.Set(ctx, "invite:"+token, payload, inviteTTL).Err(); err != nil {
		return "", fmt.Errorf("%w: invite store: %v", store.ErrTaskFailed, err)
	}
	if err := s.rdb.Set(ctx, dedupeKey, token, inviteTTL).Err(); err != nil {
		log.Printf("⚠️  Failed to record pending invite for %s: %v", email, err)
	}

	go s.notifier.NotifyInvitation(email, inviter.Username, group.Name, token)

	log.Printf("✅ Invitation sent to %s for group %s", email, group.Uid)
	return token, nil
}

// Take consumes a token and returns its invite, or nil when the token is
// unknown or expired.
func (s *Invitations) Take(ctx context.Context, token string) (*Invite, error) {
	if s.rdb == nil {
		return nil, ErrInvitesUnavailable
	}
	payload, err := s.rdb.GetDel(ctx, "invite:"+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invite fetch: %v", store.ErrTaskFailed, err)
	}
	var invite Invite
	if err := json.Unmarshal(payload, &invite); err != nil {
		return nil, fmt.Errorf("%w: invite decode: %v", store.ErrTaskFailed, err)
	}
	s.rdb.Del(ctx, fmt.Sprintf("invite_pending:%s:%s", invite.GroupUid, invite.Email))
	return &invite, nil
}
