package processors

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// linkPattern captures markdown links and images: an optional leading
// "!", the bracketed text, and the parenthesized target. The bracketed
// text may itself contain one complete image, so a linked badge
// matches as a link whose text is the image.
var linkPattern = regexp.MustCompile(`(!?)\[((?:[^\[\]]|!\[[^\]]*\]\([^)]*\))*)\]\(([^)]+)\)`)

// repositoryPattern recognizes hosting-provider URLs of the form
// https://<host>/<owner>/<repo>, with an optional .git suffix.
var repositoryPattern = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+?)(?:\.git)?/?$`)

// deriveBaseURLs derives the content and images base URLs from a
// recognized repository URL. Content links resolve against the blob
// view, images against the raw view.
func deriveBaseURLs(repository string) (contentBase, imagesBase string, ok bool) {
	match := repositoryPattern.FindStringSubmatch(strings.TrimSpace(repository))
	if match == nil {
		return "", "", false
	}

	host, owner, repo := match[1], match[2], match[3]
	contentBase = fmt.Sprintf("https://%s/%s/%s/blob/master", host, owner, repo)
	imagesBase = fmt.Sprintf("https://%s/%s/%s/raw/master", host, owner, repo)
	return contentBase, imagesBase, true
}

// rewriteMarkdown prefixes every relative link target with contentBase
// and every relative image source with imagesBase. Absolute URLs and
// in-document anchors are left untouched. The rewrite is a pure
// function of its inputs.
func rewriteMarkdown(content, contentBase, imagesBase string) string {
	return linkPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		bang, text, target := parts[1], parts[2], parts[3]

		base := contentBase
		if bang == "!" {
			base = imagesBase
		}

		// A link's text may be an image (badge rows); its source is
		// rewritten against the images base independently of the
		// surrounding link's target.
		if bang == "" && strings.Contains(text, "![") {
			text = rewriteMarkdown(text, contentBase, imagesBase)
		}

		resolved, ok := resolveTarget(base, target)
		if !ok {
			if text == parts[2] {
				return match
			}
			resolved = target
		}
		return fmt.Sprintf("%s[%s](%s)", bang, text, resolved)
	})
}

// resolveTarget joins a relative target onto base. It reports false
// when the target must be left alone: absolute URLs, pure anchors,
// unparseable targets, or an empty base.
func resolveTarget(base, target string) (string, bool) {
	if base == "" || target == "" {
		return "", false
	}
	if strings.HasPrefix(target, "#") {
		return "", false
	}

	ref, err := url.Parse(target)
	if err != nil || ref.IsAbs() {
		return "", false
	}

	baseURL, err := url.Parse(strings.TrimSuffix(base, "/") + "/")
	if err != nil {
		return "", false
	}

	return baseURL.ResolveReference(ref).String(), true
}
