// Package storage keeps session photos and avatars in an object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key prefixes inside the bucket.
const (
	SessionImagesPrefix = "session-images"
	AvatarsPrefix       = "avatars"
)

// ImageStore uploads and removes public images.
type ImageStore interface {
	// Upload stores body under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys []string) error
	// KeyFromURL maps a public URL produced by Upload back to its key.
	KeyFromURL(url string) (string, bool)
}

// SessionImageKey builds a key for a new session photo of userID.
func SessionImageKey(userID, filename string) string {
	return fmt.Sprintf("%s/%s/%d-%s%s", SessionImagesPrefix, userID, time.Now().UnixNano(), shortID(), ext(filename))
}

// AvatarKey builds a key for a new avatar of userID.
func AvatarKey(userID, filename string) string {
	return fmt.Sprintf("%s/%s-%s%s", AvatarsPrefix, userID, shortID(), ext(filename))
}

// OwnsAvatar reports whether key is an avatar uploaded by userID.
func OwnsAvatar(userID, key string) bool {
	return userID != "" && strings.HasPrefix(key, AvatarsPrefix+"/"+userID+"-")
}

// KeysFromURLs maps URLs to keys, skipping the ones the store did not produce.
func KeysFromURLs(store ImageStore, urls []string) []string {
	var keys []string
	for _, u := range urls {
		if key, ok := store.KeyFromURL(u); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func ext(filename string) string {
	e := strings.ToLower(path.Ext(filename))
	if e == "" {
		return ".jpg"
	}
	return e
}

func keyFromURL(baseURL, url string) (string, bool) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

// File is an uploaded image on its way to the store.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
