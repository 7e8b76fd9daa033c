package site

import (
	"strconv"
	"testing"

	"github.com/robertkrimen/otto"
)

// domStub is the part of the browser script.js touches: a few elements,
// event listeners, a clipboard and timers.
const domStub = `
function ClassList() { this.names = {}; }
ClassList.prototype.add = function(n) { this.names[n] = true; };
ClassList.prototype.remove = function(n) { delete this.names[n]; };
ClassList.prototype.contains = function(n) { return this.names[n] === true; };
ClassList.prototype.toggle = function(n, force) {
  var on = force === undefined ? !this.contains(n) : force;
  if (on) { this.add(n); } else { this.remove(n); }
  return on;
};

var elements = {};

function El(id, attrs, classes, parent) {
  this.id = id || "";
  this.attrs = attrs || {};
  this.parent = parent || null;
  this.classList = new ClassList();
  this.className = "";
  this.textContent = "";
  this.listeners = {};
  var list = classes || [];
  for (var i = 0; i < list.length; i++) { this.classList.add(list[i]); }
  if (this.id) { elements[this.id] = this; }
}
El.prototype.getAttribute = function(n) { return this.attrs.hasOwnProperty(n) ? this.attrs[n] : null; };
El.prototype.setAttribute = function(n, v) { this.attrs[n] = String(v); };
El.prototype.hasAttribute = function(n) { return this.attrs.hasOwnProperty(n); };
El.prototype.addEventListener = function(type, fn) { this.listeners[type] = fn; };
El.prototype.matches = function(sel) {
  if (sel.charAt(0) === "[") { return this.hasAttribute(sel.slice(1, -1)); }
  if (sel.charAt(0) === ".") { return this.classList.contains(sel.slice(1)); }
  return false;
};
El.prototype.closest = function(sel) {
  for (var el = this; el; el = el.parent) {
    if (el.matches(sel)) { return el; }
  }
  return null;
};

var pages = [new El("page-home", {}, ["page"]), new El("page-logos", {}, ["page"])];
var links = [new El("", {"data-page": "home"}), new El("", {"data-page": "logos"})];
new El("sidebar");
new El("sidebarOverlay");
new El("sidebarToggle");
new El("toast");

var document = {
  body: new El("", {"data-toast-ms": "3000", "data-load-errors": loadErrors}),
  listeners: {},
  getElementById: function(id) { return elements.hasOwnProperty(id) ? elements[id] : null; },
  querySelectorAll: function(sel) { return sel === ".page" ? pages : links; },
  addEventListener: function(type, fn) { this.listeners[type] = fn; }
};
var window = {
  listeners: {},
  addEventListener: function(type, fn) { this.listeners[type] = fn; }
};
var location = { hash: "", protocol: "http:", host: "localhost:8080", reload: function() {} };

var copied = [];
var copyFails = false;
var navigator = { clipboard: { writeText: function(text) {
  copied.push(text);
  return {
    then: function(ok) {
      if (!copyFails) { ok(); }
      return { "catch": function(fail) { if (copyFails) { fail("denied"); } } };
    }
  };
} } };
var console = { error: function() {}, log: function() {} };
var timers = [];
function setTimeout(fn, ms) { timers.push(fn); }

function click(target) {
  document.listeners.click({ target: target, preventDefault: function() {} });
}
function shown(id) { return elements[id].classList.contains("show"); }
function expanded(toggle) { return toggle.getAttribute("aria-expanded"); }

// Two logo download menus. The first id would break a naive attribute
// selector.
var menuA = "menu-a\"\\b";
var wrapA = new El("", {}, ["download-menu"]);
var toggleA = new El("", {"data-menu-toggle": menuA}, [], wrapA);
new El(menuA, {}, ["download-menu__list"], wrapA);
var wrapB = new El("", {}, ["download-menu"]);
var toggleB = new El("", {"data-menu-toggle": "menu-b"}, [], wrapB);
new El("menu-b", {}, ["download-menu__list"], wrapB);

var outside = new El("", {});
var swatch = new El("", {"data-copy": "#112233"});
var copyAll = new El("", {"data-copy": "Or: #C9A227", "data-copy-label": "toutes les couleurs"});
`

// newScript runs script.js against the stub document.
func newScript(t *testing.T, loadErrors int) *otto.Otto {
	t.Helper()
	vm := otto.New()
	if err := vm.Set("loadErrors", strconv.Itoa(loadErrors)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := vm.Run(domStub); err != nil {
		t.Fatalf("dom stub: %v", err)
	}
	if _, err := vm.Run(jsContent); err != nil {
		t.Fatalf("script.js: %v", err)
	}
	return vm
}

func runJS(t *testing.T, vm *otto.Otto, src string) otto.Value {
	t.Helper()
	v, err := vm.Run(src)
	if err != nil {
		t.Fatalf("running %q: %v", src, err)
	}
	return v
}

func evalBool(t *testing.T, vm *otto.Otto, expr string) bool {
	t.Helper()
	b, err := runJS(t, vm, expr).ToBoolean()
	if err != nil {
		t.Fatalf("%q is not a boolean: %v", expr, err)
	}
	return b
}

func evalString(t *testing.T, vm *otto.Otto, expr string) string {
	t.Helper()
	s, err := runJS(t, vm, expr).ToString()
	if err != nil {
		t.Fatalf("%q is not a string: %v", expr, err)
	}
	return s
}

func TestMenuToggleKeepsOneOpen(t *testing.T) {
	vm := newScript(t, 0)

	runJS(t, vm, "click(toggleA)")
	if !evalBool(t, vm, "shown(menuA)") {
		t.Fatal("first menu did not open")
	}
	if got := evalString(t, vm, "expanded(toggleA)"); got != "true" {
		t.Errorf("first toggle aria-expanded = %q, want true", got)
	}

	runJS(t, vm, "click(toggleB)")
	if evalBool(t, vm, "shown(menuA)") {
		t.Error("first menu still open after opening the second")
	}
	if !evalBool(t, vm, `shown("menu-b")`) {
		t.Error("second menu did not open")
	}
	if got := evalString(t, vm, "expanded(toggleA)"); got != "false" {
		t.Errorf("first toggle aria-expanded = %q, want false", got)
	}

	runJS(t, vm, "click(toggleB)")
	if evalBool(t, vm, `shown("menu-b")`) {
		t.Error("second click on the same toggle should close its menu")
	}
}

func TestMenuClosesOnOutsideClickAndEscape(t *testing.T) {
	vm := newScript(t, 0)

	runJS(t, vm, "click(toggleA); click(outside)")
	if evalBool(t, vm, "shown(menuA)") {
		t.Error("outside click should close the menu")
	}

	runJS(t, vm, `click(toggleB); document.listeners.keydown({ key: "Escape" })`)
	if evalBool(t, vm, `shown("menu-b")`) {
		t.Error("Escape should close the menu")
	}

	runJS(t, vm, `click(toggleA); location.hash = "#logos"; window.listeners.hashchange()`)
	if evalBool(t, vm, "shown(menuA)") {
		t.Error("navigation should close the menu")
	}
}

func TestHashRouting(t *testing.T) {
	vm := newScript(t, 0)
	if !evalBool(t, vm, `elements["page-home"].classList.contains("active")`) {
		t.Error("home should be active on startup")
	}

	runJS(t, vm, `location.hash = "#logos"; window.listeners.hashchange()`)
	if !evalBool(t, vm, `elements["page-logos"].classList.contains("active")`) {
		t.Error("logos page not shown")
	}
	if evalBool(t, vm, `elements["page-home"].classList.contains("active")`) {
		t.Error("home page still shown")
	}

	runJS(t, vm, `location.hash = "#nowhere"; window.listeners.hashchange()`)
	if !evalBool(t, vm, `elements["page-home"].classList.contains("active")`) {
		t.Error("unknown fragment should fall back to home")
	}
}

func TestCopyToasts(t *testing.T) {
	vm := newScript(t, 0)

	runJS(t, vm, "click(swatch)")
	if got := evalString(t, vm, "copied[0]"); got != "#112233" {
		t.Errorf("copied = %q, want #112233", got)
	}
	if got := evalString(t, vm, `elements["toast"].textContent`); got != "Copié : #112233" {
		t.Errorf("toast text = %q", got)
	}
	if got := evalString(t, vm, `elements["toast"].className`); got != "toast show toast--success" {
		t.Errorf("toast class = %q", got)
	}

	runJS(t, vm, "click(copyAll)")
	if got := evalString(t, vm, `elements["toast"].textContent`); got != "Copié : toutes les couleurs" {
		t.Errorf("labelled toast text = %q", got)
	}

	runJS(t, vm, "copyFails = true; click(swatch)")
	if got := evalString(t, vm, `elements["toast"].textContent`); got != "Erreur de copie" {
		t.Errorf("failure toast text = %q", got)
	}
	if got := evalString(t, vm, `elements["toast"].className`); got != "toast show toast--error" {
		t.Errorf("failure toast class = %q", got)
	}

	if got := evalString(t, vm, "String(timers.length)"); got != "3" {
		t.Errorf("toast timers = %s, want 3", got)
	}
}

func TestLoadErrorToast(t *testing.T) {
	vm := newScript(t, 2)
	if got := evalString(t, vm, `elements["toast"].textContent`); got != "Erreur de chargement des données" {
		t.Errorf("toast text = %q", got)
	}
	if got := evalString(t, vm, `elements["toast"].className`); got != "toast show toast--error" {
		t.Errorf("toast class = %q", got)
	}

	vm = newScript(t, 0)
	if got := evalString(t, vm, `elements["toast"].textContent`); got != "" {
		t.Errorf("unexpected startup toast %q", got)
	}
}
