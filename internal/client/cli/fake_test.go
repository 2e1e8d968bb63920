package cli

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/wanttogo/internal/api"
	"github.com/dmitrijs2005/wanttogo/internal/client/client"
	"github.com/dmitrijs2005/wanttogo/internal/client/config"
)

type fakeClient struct {
	userName string
	loggedIn bool
	closed   bool

	registered map[string]string
	lastKey    string
	list       []string
	pingErr    error
	err        error
}

func newFakeClient() *fakeClient {
	return &fakeClient{registered: map[string]string{}}
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(_ context.Context, username, password string) error {
	if f.err != nil {
		return f.err
	}
	f.registered[username] = password
	return nil
}

func (f *fakeClient) Login(_ context.Context, username, password string) error {
	if f.err != nil {
		return f.err
	}
	f.userName = username
	f.loggedIn = true
	return nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.userName = ""
	f.loggedIn = false
	return nil
}

func (f *fakeClient) IsLoggedIn() bool { return f.loggedIn }
func (f *fakeClient) UserName() string { return f.userName }

var fakeCatalog = map[string]api.Destination{
	"paris":      {Key: "paris", Name: "Paris", Country: "France", Description: "The City of Light.", MediaURL: "https://www.youtube.com/embed/AQ6GmpMu5L8"},
	"swiss-alps": {Key: "swiss-alps", Name: "Swiss Alps", Country: "Switzerland", Description: "Majestic mountain peaks."},
}

func (f *fakeClient) ViewDestination(_ context.Context, key string) (*api.Destination, error) {
	f.lastKey = key
	if f.err != nil {
		return nil, f.err
	}
	d, ok := fakeCatalog[key]
	if !ok {
		return nil, client.ErrNotFound
	}
	d.AlreadyInList = slices.Contains(f.list, d.Name)
	return &d, nil
}

func (f *fakeClient) AddToList(_ context.Context, destinationName string) (*api.AddToListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.list {
		if d == destinationName {
			return &api.AddToListResponse{Outcome: api.OutcomeAlreadyPresent}, nil
		}
	}
	f.list = append(f.list, destinationName)
	return &api.AddToListResponse{Outcome: api.OutcomeAdded}, nil
}

func (f *fakeClient) ViewList(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.list...), nil
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	out := &bytes.Buffer{}
	return newApp(cfg, fc, strings.NewReader(input), out), out
}
