package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"leave-tracker-backend/internal/config"
	apperrors "leave-tracker-backend/internal/errors"
	"leave-tracker-backend/internal/logger"
)

// IdentityRoleMember is one subject assigned to an identity role
type IdentityRoleMember struct {
	UserID int64  `json:"userId"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}

// IdentityUserProfile carries the names shown in the team calendar
type IdentityUserProfile struct {
	UserID    string `json:"userId"`
	Handle    string `json:"handle"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type identityRole struct {
	ID       json.Number `json:"id"`
	RoleName string      `json:"roleName"`
}

type identityUser struct {
	ID        json.Number `json:"id"`
	UserID    json.Number `json:"userId"`
	Handle    string      `json:"handle"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
}

// IdentityService talks to the identity API using an M2M token
type IdentityService struct {
	cfg        *config.Config
	tokens     TokenProvider
	httpClient *http.Client
}

// NewIdentityService creates a new identity service
func NewIdentityService(cfg *config.Config, tokens TokenProvider) *IdentityService {
	return &IdentityService{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListRoleMembersByName returns every member of the role named roleName.
// An unknown role yields an empty list.
func (s *IdentityService) ListRoleMembersByName(ctx context.Context, roleName string) ([]IdentityRoleMember, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	roleID, err := s.roleIDByName(ctx, roleName, token)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.WithContext(ctx).Warnf("Role not found for name: %s", roleName)
			return []IdentityRoleMember{}, nil
		}
		return nil, err
	}
	return s.listRoleMembers(ctx, roleID, token)
}

func (s *IdentityService) roleIDByName(ctx context.Context, roleName, token string) (string, error) {
	var roles []identityRole
	fullURL := s.buildURL("/roles") + "?filter=" + url.QueryEscape("roleName="+roleName)
	if _, err := s.getJSON(ctx, fullURL, token, &roles); err != nil {
		return "", err
	}
	if len(roles) == 0 {
		return "", apperrors.ErrIdentityRoleNotFound
	}

	matched := roles[0]
	for _, role := range roles {
		if strings.EqualFold(role.RoleName, roleName) {
			matched = role
			break
		}
	}
	if matched.ID == "" {
		return "", apperrors.ErrIdentityRoleNotFound
	}
	if len(roles) > 1 {
		logger.WithContext(ctx).Warnf("Multiple roles matched %s. Using roleId %s.", roleName, matched.ID)
	}
	return matched.ID.String(), nil
}

func (s *IdentityService) listRoleMembers(ctx context.Context, roleID, token string) ([]IdentityRoleMember, error) {
	perPage := s.cfg.IdentityRoleMemberPageSize
	members := make([]IdentityRoleMember, 0)

	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("perPage", strconv.Itoa(perPage))
		fullURL := s.buildURL("/roles/"+url.PathEscape(roleID)+"/subjects") + "?" + q.Encode()

		var batch []IdentityRoleMember
		header, err := s.getJSON(ctx, fullURL, token, &batch)
		if err != nil {
			return nil, err
		}
		members = append(members, batch...)

		if len(batch) == 0 {
			break
		}
		total, err := strconv.Atoi(header.Get("X-Total"))
		if err != nil {
			// no usable total: a short page is the last one
			if len(batch) < perPage {
				break
			}
			continue
		}
		if len(members) >= total {
			break
		}
	}
	return members, nil
}

// GetUsersByIDs looks up display profiles for the given subject ids in
// batches of the configured page size.
func (s *IdentityService) GetUsersByIDs(ctx context.Context, ids []string) ([]IdentityUserProfile, error) {
	if len(ids) == 0 {
		return []IdentityUserProfile{}, nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	batchSize := s.cfg.IdentityRoleMemberPageSize
	profiles := make([]IdentityUserProfile, 0, len(ids))
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		q := url.Values{}
		q.Set("userIds", strings.Join(ids[start:end], ","))
		q.Set("perPage", strconv.Itoa(batchSize))

		var users []identityUser
		if _, err := s.getJSON(ctx, s.buildURL("/users")+"?"+q.Encode(), token, &users); err != nil {
			return nil, err
		}
		for _, u := range users {
			id := u.UserID.String()
			if id == "" {
				id = u.ID.String()
			}
			profiles = append(profiles, IdentityUserProfile{
				UserID:    id,
				Handle:    u.Handle,
				FirstName: u.FirstName,
				LastName:  u.LastName,
			})
		}
	}
	return profiles, nil
}

func (s *IdentityService) buildURL(path string) string {
	return strings.TrimRight(s.cfg.IdentityAPIURL, "/") + path
}

// getJSON performs an authenticated GET request and decodes JSON into out.
func (s *IdentityService) getJSON(ctx context.Context, fullURL, token string, out interface{}) (http.Header, error) {
	logger.WithContext(ctx).Debugf("Invoking identity API GET %s", fullURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("identity", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewUpstreamError("identity", fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, apperrors.NewUpstreamError("identity", fmt.Errorf("failed to decode response: %w", err))
	}
	return resp.Header, nil
}
