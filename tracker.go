package gats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"
)

// RouteKind discriminates how a global-tag update request reaches the
// ticket tracker.
type RouteKind int

const (
	// RouteNone files nothing.
	RouteNone RouteKind = iota
	// RouteComment adds a comment to an existing issue.
	RouteComment
	// RouteCreate creates a new issue.
	RouteCreate
)

// String returns a stable textual representation for RouteKind.
func (k RouteKind) String() string {
	switch k {
	case RouteComment:
		return "comment"
	case RouteCreate:
		return "create"
	default:
		return "none"
	}
}

// MarshalJSON renders the kind as its textual name.
func (k RouteKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Route is the normalized ticket-tracker destination of a task. Exactly one
// shape applies, selected by Kind: a comment on IssueKey or a new issue
// built from Fields. Description optionally overrides the default body
// template; placeholders are expanded against a TicketRequest.
type Route struct {
	Kind        RouteKind         `json:"kind"`
	IssueKey    string            `json:"issueKey,omitempty"`
	Fields      *jira.IssueFields `json:"fields,omitempty"`
	Description string            `json:"description,omitempty"`
}

// CommentOn routes a request as a comment on an existing issue.
func CommentOn(issueKey string) Route {
	return Route{Kind: RouteComment, IssueKey: issueKey}
}

// CreateIssue routes a request as a new issue with the given fields.
// Missing project and issue type are filled in during normalization.
func CreateIssue(fields *jira.IssueFields) Route {
	return Route{Kind: RouteCreate, Fields: fields}
}

// SubIssueOf routes a request as a sub-issue of parentKey assigned to
// assignee. This replaces the legacy bare-issue-key shorthand.
func SubIssueOf(parentKey, assignee string) Route {
	return CreateIssue(&jira.IssueFields{
		Parent:   &jira.Parent{Key: parentKey},
		Assignee: &jira.User{Name: assignee},
	})
}

// WithDescription overrides the description (or comment body) template.
func (r Route) WithDescription(template string) Route {
	r.Description = template
	return r
}

// Tracker defaults applied during route normalization.
const (
	defaultProjectKey  = "BII"
	defaultIssueType   = "Task"
	subIssueTypeID     = "5"
	defaultSummaryTmpl = "{request} of {tag} for {task} requested by {user}"
	defaultBodyTmpl    = "{request} of global tag {tag} requested by {user} at {time}.\nRelease: {release}\nReason: {reason}"
)

// normalized fills in the routing defaults once at the boundary: the BII
// project, and an issue type of Task, or sub-issue (id 5) when a parent key
// is present. Comment and none routes pass through unchanged.
func (r Route) normalized() Route {
	if r.Kind != RouteCreate {
		return r
	}

	fields := &jira.IssueFields{}
	if r.Fields != nil {
		dup := *r.Fields
		fields = &dup
	}

	if fields.Project.Key == "" {
		fields.Project = jira.Project{Key: defaultProjectKey}
	}

	if fields.Type.ID == "" && fields.Type.Name == "" {
		if fields.Parent != nil {
			fields.Type = jira.IssueType{ID: subIssueTypeID}
		} else {
			fields.Type = jira.IssueType{Name: defaultIssueType}
		}
	}

	r.Fields = fields

	return r
}

// TicketRoute returns where a global-tag update request for the given task
// is filed. Every returned route is already normalized.
func TicketRoute(task Task) Route {
	var route Route

	switch task {
	case TaskMain:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "depietro"}})
	case TaskValidation:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "jikumar"}})
	case TaskOnline:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "seokhee"}})
	case TaskPrompt, TaskData:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "mapr"}})
	case TaskMC:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "amartini"}})
	case TaskAnalysis:
		route = CreateIssue(&jira.IssueFields{Assignee: &jira.User{Name: "fmeier"}})
	default:
		return Route{Kind: RouteNone}
	}

	return route.normalized()
}

// TicketRequest carries the request attributes available to summary and
// description templates. Placeholders: {tag}, {user}, {reason}, {release},
// {request}, {task}, {time}.
type TicketRequest struct {
	Tag     string
	User    string
	Reason  string
	Release string
	Request string // Addition, Update, or Change
	Task    Task
	Time    time.Time
}

// Expand replaces the {key} placeholders of template with request values.
func (q TicketRequest) Expand(template string) string {
	return strings.NewReplacer(
		"{tag}", q.Tag,
		"{user}", q.User,
		"{reason}", q.Reason,
		"{release}", q.Release,
		"{request}", q.Request,
		"{task}", q.Task.String(),
		"{time}", q.Time.Format(time.RFC3339),
	).Replace(template)
}

// OpenTicket files the request according to route: it creates the issue or
// adds the comment and returns the affected issue key. A RouteNone route is
// a no-op returning an empty key.
func OpenTicket(ctx context.Context, client *jira.Client, route Route, req TicketRequest) (string, error) {
	route = route.normalized()

	switch route.Kind {
	case RouteNone:
		return "", nil

	case RouteComment:
		body := defaultBodyTmpl
		if route.Description != "" {
			body = route.Description
		}

		comment := &jira.Comment{Body: req.Expand(body)}
		if _, _, err := client.Issue.AddCommentWithContext(ctx, route.IssueKey, comment); err != nil {
			return "", fmt.Errorf("comment on %s: %w", route.IssueKey, err)
		}

		return route.IssueKey, nil

	case RouteCreate:
		fields := *route.Fields // normalized routes always carry fields
		if fields.Summary == "" {
			fields.Summary = defaultSummaryTmpl
		}
		fields.Summary = req.Expand(fields.Summary)

		body := defaultBodyTmpl
		if route.Description != "" {
			body = route.Description
		}
		fields.Description = req.Expand(body)

		issue, _, err := client.Issue.CreateWithContext(ctx, &jira.Issue{Fields: &fields})
		if err != nil {
			return "", fmt.Errorf("create issue: %w", err)
		}

		return issue.Key, nil

	default:
		return "", fmt.Errorf("unsupported route kind %q", route.Kind)
	}
}
