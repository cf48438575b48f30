package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"blog-backend/cmd/api/services"
	"blog-backend/models"
)

// FeedSize is the number of recent posts included in the RSS feed.
const FeedSize = 20

// FeedInfo describes the channel of the RSS feed.
type FeedInfo struct {
	Title       string
	Link        string
	Description string
}

// RSSFeedHandler godoc
// @Summary      RSS feed
// @Description  RSS 2.0 feed of the most recent posts
// @Tags         blog
// @Produce      xml
// @Success      200  {string}  string
// @Router       /blog/rss [get]
func RSSFeedHandler(svc *services.BlogService, info FeedInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.GetRecentPosts(c.Request.Context(), FeedSize)
		if err != nil {
			writeError(c, err)
			return
		}

		out, err := feeds.ToXML(buildFeed(info, posts))
		if err != nil {
			writeError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(out))
	}
}

// buildFeed renders posts as an RSS channel. Items link to /blog/{slug}, use
// the post id as a non-permalink guid and carry tag names as the category.
func buildFeed(info FeedInfo, posts []models.BlogPost) *feeds.RssFeed {
	base := strings.TrimRight(info.Link, "/")
	feed := &feeds.Feed{
		Title:       info.Title,
		Link:        &feeds.Link{Href: info.Link},
		Description: info.Description,
		Items:       make([]*feeds.Item, 0, len(posts)),
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].UpdatedAt.UTC()
	}
	for _, p := range posts {
		item := &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: base + "/blog/" + p.Slug},
			Id:          p.ID,
			IsPermaLink: "false",
			Description: p.Excerpt,
			Created:     p.CreatedAt.UTC(),
			Updated:     p.UpdatedAt.UTC(),
		}
		if p.Author != "" {
			item.Author = &feeds.Author{Name: p.Author}
		}
		feed.Items = append(feed.Items, item)
	}

	rss := (&feeds.Rss{Feed: feed}).RssFeed()
	for i, p := range posts {
		names := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			names = append(names, t.Name)
		}
		rss.Items[i].Category = strings.Join(names, ", ")
	}
	return rss
}
