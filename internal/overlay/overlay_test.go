package overlay

import (
	"strings"
	"testing"
	"time"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
)

func TestCaptionFollowsState(t *testing.T) {
	store := theme.New()
	o := New(store)

	if c := o.Caption(); c.Visible {
		t.Error("default culture should not be visible")
	}

	store.SetCulture(culture.Seoul)
	c := o.Caption()
	if !c.Visible || c.Culture != culture.Seoul || c.Name != "Seoul" || c.Genre != "K-Pop" {
		t.Errorf("unexpected caption %+v", c)
	}
}

func TestAdvanceFades(t *testing.T) {
	store := theme.New()
	o := New(store)
	store.SetCulture(culture.Tokyo)

	c := o.Advance(250 * time.Millisecond)
	if c.Opacity != 0.5 {
		t.Errorf("expected half opacity, got %f", c.Opacity)
	}
	c = o.Advance(time.Second)
	if c.Opacity != 1 {
		t.Errorf("expected full opacity, got %f", c.Opacity)
	}

	store.SetCulture(culture.Default)
	c = o.Advance(100 * time.Millisecond)
	if c.Visible {
		t.Error("should not be visible after returning to default")
	}
	if c.Name != "Tokyo" {
		t.Errorf("expected the tokyo caption while fading out, got %q", c.Name)
	}
	if c.Opacity <= 0 || c.Opacity >= 1 {
		t.Errorf("expected partial opacity, got %f", c.Opacity)
	}

	o.Advance(time.Second)
	if o.Render(80) != "" {
		t.Error("expected empty render when transparent")
	}
}

func TestInstantFade(t *testing.T) {
	store := theme.New(theme.WithState(theme.State{Culture: culture.London}))
	o := New(store, WithFade(0))
	if c := o.Advance(0); c.Opacity != 1 {
		t.Errorf("expected instant fade in, got %f", c.Opacity)
	}
}

func TestUnknownCultureCaption(t *testing.T) {
	store := theme.New(theme.WithState(theme.State{Culture: culture.ID("atlantis")}))
	c := New(store).Caption()
	if !c.Visible || c.Culture != "atlantis" || c.Name != "atlantis" {
		t.Errorf("unexpected caption %+v", c)
	}
}

func TestRenderCard(t *testing.T) {
	store := theme.New(theme.WithState(theme.State{Culture: culture.Lagos}))
	o := New(store, WithFade(0), WithDark(true))
	o.Advance(time.Millisecond)

	out := o.Render(60)
	if !strings.Contains(out, "Lagos") || !strings.Contains(out, "Afrobeats") {
		t.Errorf("card missing caption text:\n%s", out)
	}

	store.SetCulture(culture.Tokyo)
	c := o.Caption()
	if c.ThemeDescription == "" {
		t.Fatal("tokyo caption has no long description")
	}
	out = o.Render(120)
	if !strings.Contains(out, c.Description) || !strings.Contains(out, "rain-slick") {
		t.Errorf("card missing long description:\n%s", out)
	}
	if strings.Index(out, "rain-slick") < strings.Index(out, c.Description) {
		t.Errorf("long description should follow the short one:\n%s", out)
	}
}

func TestFadeEndpoints(t *testing.T) {
	if got := fade("#ff0000", "#000000", 1); string(got) != "#ff0000" {
		t.Errorf("expected unchanged colour, got %s", got)
	}
	if got := fade("#ff0000", "#000000", 0); string(got) != "#000000" {
		t.Errorf("expected page colour, got %s", got)
	}
	if got := fade("nope", "#000000", 0.5); string(got) != "nope" {
		t.Errorf("expected passthrough, got %s", got)
	}
}
