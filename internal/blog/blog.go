// Package blog serves the static editorial posts shown on the blog page.
package blog

import "github.com/hemshop/storefront/internal/model"

// Blog is a read-only post collection.
type Blog struct {
	posts []model.BlogPost
}

// New returns the blog with the built-in post set.
func New() *Blog {
	return &Blog{posts: seedPosts()}
}

// Posts returns all posts in editorial order. The slice is a copy.
func (b *Blog) Posts() []model.BlogPost {
	out := make([]model.BlogPost, len(b.posts))
	copy(out, b.posts)
	return out
}

// Get returns the post with the given id.
func (b *Blog) Get(id int) (model.BlogPost, bool) {
	for _, p := range b.posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.BlogPost{}, false
}

func seedPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:       1,
			Title:    "THE RISE OF TECHWEAR",
			Date:     "OCT 12, 2024",
			Category: "CULTURE",
			Image:    "https://images.unsplash.com/photo-1483985988355-763728e1935b?q=80&w=2070&auto=format&fit=crop",
			Excerpt:  "Techwear is more than just pockets and straps. It is the intersection of utility and aesthetics in the modern urban environment.",
			Content: "Techwear has evolved from a niche subculture into a dominant force in modern fashion. " +
				"Originating from the need for functional clothing that could withstand the elements of urban life, " +
				"it has transformed into a statement of identity.\n\n" +
				"At its core, techwear is about utility. Waterproof fabrics, articulated joints for movement, and ample " +
				"storage are staples. But beyond functionality, it represents a futuristic outlook and a preparation for " +
				"a cyberpunk reality that feels increasingly close.\n\n" +
				"HEM embraces this philosophy. Our latest collection integrates technical fabrics with street-ready " +
				"silhouettes, ensuring you stay dry and look sharp, whether you're navigating the subway or the runway.",
		},
		{
			ID:       2,
			Title:    "MINIMALISM IN CHAOS",
			Date:     "SEP 28, 2024",
			Category: "DESIGN",
			Image:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?q=80&w=2020&auto=format&fit=crop",
			Excerpt:  "In a world of noise, silence is loud. Discover why minimalist streetwear is taking over the global fashion scene.",
			Content: "The streets are loud. Advertisements, traffic, crowds: it's a sensory overload. Minimalist " +
				"streetwear offers a counter-narrative. It strips away the unnecessary, focusing on form, fit, and fabric.\n\n" +
				"By reducing the noise in your outfit, you amplify your presence. A simple black hoodie with the perfect " +
				"drop shoulder speaks volumes more than a neon billboard. It says you are confident enough to let the " +
				"details do the talking.\n\n" +
				"This season, we explore the power of negative space. Monochromatic palettes, subtle branding, and " +
				"architectural cuts define the new HEM aesthetic.",
		},
		{
			ID:       3,
			Title:    "SNEAKER CULTURE 2024",
			Date:     "AUG 15, 2024",
			Category: "TRENDS",
			Image:    "https://images.unsplash.com/photo-1552346154-21d32810aba3?q=80&w=2070&auto=format&fit=crop",
			Excerpt:  "From chunky dads shoes to sleek runners, we break down what is on foot this year and what is staying in the box.",
			Content: "Sneaker culture is in a state of flux. The hype cycle is faster than ever, but timeless silhouettes " +
				"are making a comeback. The \"dad shoe\" trend has matured into an appreciation for archival runners and " +
				"retro basketball styles.\n\n" +
				"Comfort is king in 2024. We are seeing a shift towards breathable mesh, advanced cushioning, and " +
				"versatile colorways that bridge the gap between performance and lifestyle.\n\n" +
				"Pairing the right kicks with HEM cargo pants is an art form. It's about balance: weight at the bottom " +
				"to anchor the oversized fits up top.",
		},
	}
}
