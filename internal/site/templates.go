package site

const pageTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="generator" content="brandkit">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css?v={{.BuildID}}">
  <script>
    function brandkitImageFailed(img) {
      var region = img.closest("[data-preview]") || img.parentNode;
      region.classList.add("is-missing");
      region.innerHTML = '<span class="placeholder">Introuvable</span>';
    }
  </script>
</head>
<body data-toast-ms="{{.ToastMillis}}" data-load-errors="{{len .LoadErrors}}"{{if .LiveReload}} data-live-reload="on"{{end}}>
  <button type="button" class="sidebar-toggle" id="sidebarToggle" aria-label="Menu">&#9776;</button>
  <div class="sidebar-overlay" id="sidebarOverlay"></div>

  <aside class="sidebar" id="sidebar">
    <div class="sidebar__brand">{{.Title}}</div>
    <nav class="sidebar__nav">
      {{- range .Nav}}
      {{- if .Title}}
      <div class="sidebar__group">{{.Title}}</div>
      {{- end}}
      {{- range .Sections}}
      <a href="#{{.ID}}" class="sidebar__link{{if eq .ID "home"}} active{{end}}" data-page="{{.ID}}"><span class="sidebar__icon">{{.Icon}}</span>{{.Label}}</a>
      {{- end}}
      {{- end}}
    </nav>
  </aside>

  <main class="main">
    <section class="page active" id="page-home">
      <header class="page__header">
        <h1>{{.Title}}</h1>
        <p class="page__lead">Charte graphique, design system et ressources de marque.</p>
      </header>
      {{- if .LoadErrors}}
      <div class="notice notice--error">
        <strong>Certaines données n'ont pas pu être chargées.</strong>
        <ul>{{range .LoadErrors}}<li><code>{{.}}</code></li>{{end}}</ul>
      </div>
      {{- end}}
      <div class="stats">
        <div class="stat"><span class="stat__value">{{.Stats.Colors}}</span><span class="stat__label">Couleurs</span></div>
        <div class="stat"><span class="stat__value">{{.Stats.Templates}}</span><span class="stat__label">Templates</span></div>
        <div class="stat"><span class="stat__value">{{.Stats.Fonts}}</span><span class="stat__label">Polices</span></div>
        <div class="stat"><span class="stat__value">{{.Stats.Assets}}</span><span class="stat__label">Fichiers</span></div>
      </div>
    </section>

    <section class="page" id="page-colors">
      <header class="page__header"><h1>Couleurs</h1><p class="page__lead">Cliquez sur une couleur pour copier sa valeur.</p></header>
      {{- if .Colors}}
      <div class="swatch-grid">
        {{- range .Colors}}
        <button type="button" class="swatch" data-copy="{{.Value}}">
          <span class="swatch__chip" style="background: {{.CSS}}"></span>
          <span class="swatch__name">{{.Label}}</span>
          <code class="swatch__value">{{.Value}}</code>
        </button>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucune couleur définie.</p>
      {{- end}}
    </section>

    <section class="page" id="page-typography">
      <header class="page__header"><h1>Typographie</h1><p class="page__lead"><code>{{.FontFamily}}</code></p></header>
      <div class="type-scale">
        {{- range .TypeScale}}
        <div class="type-row">
          <div class="type-row__meta"><strong>{{.Label}}</strong><span>{{.Size}} / {{.Weight}}</span></div>
          <div class="type-row__sample" style="font-family: {{$.FontFamily}}; font-size: {{.Size}}; font-weight: {{.Weight}}">{{.Sample}}</div>
        </div>
        {{- end}}
      </div>
    </section>

    <section class="page" id="page-spacing">
      <header class="page__header"><h1>Espacements</h1></header>
      {{- if .Spacing}}
      <div class="spacing-list">
        {{- range .Spacing}}
        <div class="spacing-row">
          <span class="spacing-row__name">{{.Name}}</span>
          <span class="spacing-row__bar" style="width: {{.Width}}px"></span>
          <code>{{.Value}}</code>
        </div>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucun espacement défini.</p>
      {{- end}}
      {{- if .Radius}}
      <h2>Rayons</h2>
      <div class="radius-grid">
        {{- range .Radius}}
        <div class="radius-item">
          <div class="radius-item__box" style="border-radius: {{.Value}}"></div>
          <span>{{.Name}}</span>
          <code>{{.Value}}</code>
        </div>
        {{- end}}
      </div>
      {{- end}}
    </section>

    <section class="page" id="page-components">
      <header class="page__header"><h1>Composants</h1></header>
      {{- if .Components}}
      <ul class="checklist">
        {{- range .Components}}
        <li class="checklist__item{{if .Done}} checklist__item--done{{end}}">
          <span class="checklist__mark">{{if .Done}}&#10003;{{else}}&#9675;{{end}}</span>
          <span class="checklist__name">{{.Name}}</span>
          <span class="badge{{if .Done}} badge--success{{else}} badge--muted{{end}}">{{.Status}}</span>
        </li>
        {{- end}}
      </ul>
      {{- else}}
      <p class="empty">Aucun composant suivi.</p>
      {{- end}}
    </section>

    <section class="page" id="page-templates">
      <header class="page__header"><h1>Templates</h1></header>
      {{- if .Templates}}
      <div class="card-grid">
        {{- range .Templates}}
        <article class="template-card">
          <div class="template-card__preview" data-preview>
            {{- if .Preview}}
            <img src="{{.Preview}}" alt="{{.Name}}" loading="lazy" onerror="brandkitImageFailed(this)">
            {{- else}}
            <span class="placeholder">Aperçu</span>
            {{- end}}
          </div>
          <div class="template-card__body">
            <h3>{{.Name}}</h3>
            {{- if .Type}}<span class="badge">{{.Type}}</span>{{end}}
            <div class="template-card__desc">{{.Description}}</div>
            {{- if .URL}}
            <a class="btn btn--small" href="{{.URL}}" target="_blank" rel="noopener">Ouvrir</a>
            {{- end}}
          </div>
        </article>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucun template disponible.</p>
      {{- end}}
    </section>

    <section class="page" id="page-logos">
      <header class="page__header"><h1>Logos</h1></header>
      {{- if .Logos}}
      <div class="card-grid">
        {{- range .Logos}}
        <article class="logo-card" id="logo-{{.ID}}" data-variant="{{.Variant}}">
          <div class="logo-card__preview{{if .Dark}} logo-card__preview--dark{{end}}" data-preview>
            {{- if .PreviewPath}}
            <img src="{{.PreviewPath}}" alt="{{.Name}}" loading="lazy" onerror="brandkitImageFailed(this)">
            {{- else}}
            <span class="placeholder">Aucun fichier</span>
            {{- end}}
          </div>
          <div class="logo-card__body">
            <h3>{{.Name}}</h3>
            <span class="badge">{{.VariantLabel}}</span>
            {{- if .MultiFile}}
            <div class="download-menu">
              <button type="button" class="btn btn--small" data-menu-toggle="{{.MenuID}}" aria-haspopup="true" aria-expanded="false">Télécharger &#9662;</button>
              <div class="download-menu__list" id="{{.MenuID}}" role="menu">
                {{- range .Downloads}}
                <a href="{{.Path}}" download="{{.Filename}}" role="menuitem"><span class="download-menu__label">{{.Label}}</span><span class="download-menu__file">{{.Filename}}</span></a>
                {{- end}}
              </div>
            </div>
            {{- else if .HasFiles}}
            {{- with index .Downloads 0}}
            <a class="btn btn--small" href="{{.Path}}" download="{{.Filename}}">Télécharger {{.Label}}</a>
            {{- end}}
            {{- else}}
            <span class="badge badge--muted">Aucun fichier</span>
            {{- end}}
          </div>
        </article>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucun logo disponible.</p>
      {{- end}}
    </section>

    <section class="page" id="page-brand">
      <header class="page__header"><h1>Couleurs &amp; polices</h1></header>
      <div class="section-bar">
        <h2>Couleurs de marque</h2>
        {{- if .BrandColors}}
        <button type="button" class="btn btn--small btn--secondary" data-copy="{{.BrandColorsText}}" data-copy-label="toutes les couleurs">Tout copier</button>
        {{- end}}
      </div>
      {{- if .BrandColors}}
      <div class="swatch-grid">
        {{- range .BrandColors}}
        <button type="button" class="swatch" data-copy="{{.Value}}">
          <span class="swatch__chip" style="background: {{.CSS}}"></span>
          <span class="swatch__name">{{.Label}}</span>
          <code class="swatch__value">{{.Value}}</code>
        </button>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucune couleur de marque.</p>
      {{- end}}
      <h2>Polices</h2>
      {{- if .Fonts}}
      <div class="card-grid">
        {{- range .Fonts}}
        <article class="font-card">
          <div class="font-card__sample" style="font-family: '{{.Name}}', sans-serif">Aa</div>
          <h3>{{.Name}}</h3>
          {{- if .Styles}}<p class="font-card__styles">{{.Styles}}</p>{{end}}
          {{- if .DownloadURL}}
          <a class="btn btn--small" href="{{.DownloadURL}}" target="_blank" rel="noopener">Télécharger</a>
          {{- else}}
          <span class="badge badge--muted">Locale</span>
          {{- end}}
        </article>
        {{- end}}
      </div>
      {{- else}}
      <p class="empty">Aucune police définie.</p>
      {{- end}}
    </section>

    <section class="page" id="page-assets">
      <header class="page__header"><h1>Fichiers</h1></header>
      {{- if .Assets}}
      <ul class="asset-list">
        {{- range .Assets}}
        <li class="asset-list__item">
          <span class="asset-list__icon">{{.Icon}}</span>
          <span class="asset-list__name">{{.Name}}</span>
          <a class="btn btn--small btn--secondary" href="{{.Path}}" download>Télécharger</a>
        </li>
        {{- end}}
      </ul>
      {{- else}}
      <p class="empty">Aucun fichier disponible.</p>
      {{- end}}
    </section>
  </main>

  <div class="toast" id="toast" role="status" aria-live="polite"></div>
  <script src="script.js?v={{.BuildID}}"></script>
</body>
</html>
`

const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f7f5f0;
  --bg-sidebar: #1b2a4a;
  --text: #1f2328;
  --text-secondary: #4a5058;
  --text-muted: #8a9098;
  --text-sidebar: #e8e4da;
  --border: #e2ded5;
  --accent: #c9a227;
  --accent-hover: #b08c1c;
  --success: #2f9e44;
  --error: #c92a2a;
  --sidebar-width: 260px;
  --content-max-width: 1100px;
  --radius: 8px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.12);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html { font-size: 16px; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

h1 { font-size: 2rem; margin-bottom: 0.25rem; }
h2 { font-size: 1.25rem; margin: 2rem 0 1rem; }
h3 { font-size: 1rem; margin-bottom: 0.25rem; }
code { font-family: "SFMono-Regular", Consolas, monospace; font-size: 0.85em; color: var(--text-secondary); }
a { color: inherit; }

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  color: var(--text-sidebar);
  overflow-y: auto;
  padding: 1.5rem 0;
  z-index: 20;
  transition: transform 0.2s ease;
}

.sidebar__brand {
  font-weight: 700;
  font-size: 1.1rem;
  padding: 0 1.5rem 1.5rem;
}

.sidebar__group {
  font-size: 0.7rem;
  text-transform: uppercase;
  letter-spacing: 0.08em;
  opacity: 0.6;
  padding: 1rem 1.5rem 0.25rem;
}

.sidebar__link {
  display: flex;
  align-items: center;
  gap: 0.6rem;
  padding: 0.5rem 1.5rem;
  text-decoration: none;
  border-left: 3px solid transparent;
}

.sidebar__link:hover { background: rgba(255,255,255,0.06); }
.sidebar__link.active { border-left-color: var(--accent); background: rgba(255,255,255,0.1); }

.sidebar-toggle {
  display: none;
  position: fixed;
  top: 1rem;
  left: 1rem;
  z-index: 30;
  border: none;
  border-radius: var(--radius);
  background: var(--bg-sidebar);
  color: var(--text-sidebar);
  font-size: 1.25rem;
  padding: 0.3rem 0.6rem;
  cursor: pointer;
}

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 10;
}

.sidebar-overlay.show { display: block; }

/* ============ Layout ============ */
.main {
  margin-left: var(--sidebar-width);
  padding: 2.5rem 3rem;
  max-width: calc(var(--content-max-width) + var(--sidebar-width));
}

.page { display: none; }
.page.active { display: block; }

.page__header { margin-bottom: 2rem; }
.page__lead { color: var(--text-secondary); }

.empty { color: var(--text-muted); font-style: italic; }

.notice {
  border-radius: var(--radius);
  padding: 1rem 1.25rem;
  margin-bottom: 2rem;
}

.notice--error { background: #fff5f5; border: 1px solid #ffc9c9; color: var(--error); }
.notice ul { margin: 0.5rem 0 0 1.25rem; }

/* ============ Home ============ */
.stats {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(160px, 1fr));
  gap: 1rem;
}

.stat {
  background: var(--bg-secondary);
  border-radius: var(--radius);
  padding: 1.25rem;
  display: flex;
  flex-direction: column;
}

.stat__value { font-size: 2rem; font-weight: 700; }
.stat__label { color: var(--text-secondary); }

/* ============ Buttons & badges ============ */
.btn {
  display: inline-block;
  border: none;
  border-radius: var(--radius);
  background: var(--accent);
  color: #fff;
  padding: 0.5rem 1rem;
  font: inherit;
  text-decoration: none;
  cursor: pointer;
}

.btn:hover { background: var(--accent-hover); }
.btn--small { padding: 0.3rem 0.75rem; font-size: 0.85rem; }
.btn--secondary { background: var(--bg-secondary); color: var(--text); border: 1px solid var(--border); }
.btn--secondary:hover { background: var(--border); }

.badge {
  display: inline-block;
  font-size: 0.75rem;
  padding: 0.1rem 0.5rem;
  border-radius: 999px;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  margin: 0.25rem 0.5rem 0.5rem 0;
}

.badge--success { background: #ebfbee; border-color: #b2f2bb; color: var(--success); }
.badge--muted { color: var(--text-muted); }

.placeholder { color: var(--text-muted); font-size: 0.85rem; }

/* ============ Swatches ============ */
.swatch-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(150px, 1fr));
  gap: 1rem;
}

.swatch {
  display: flex;
  flex-direction: column;
  text-align: left;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  overflow: hidden;
  font: inherit;
  cursor: pointer;
  box-shadow: var(--shadow);
}

.swatch:hover { box-shadow: var(--shadow-lg); }
.swatch__chip { display: block; height: 90px; border-bottom: 1px solid var(--border); }
.swatch__name { padding: 0.5rem 0.75rem 0; font-weight: 600; }
.swatch__value { padding: 0 0.75rem 0.6rem; }

.section-bar { display: flex; align-items: center; justify-content: space-between; }

/* ============ Typography ============ */
.type-row {
  display: grid;
  grid-template-columns: 160px 1fr;
  gap: 1.5rem;
  padding: 1.25rem 0;
  border-bottom: 1px solid var(--border);
}

.type-row__meta { display: flex; flex-direction: column; color: var(--text-secondary); font-size: 0.85rem; }
.type-row__sample { line-height: 1.3; }

/* ============ Spacing ============ */
.spacing-row {
  display: grid;
  grid-template-columns: 80px auto 1fr;
  align-items: center;
  gap: 1rem;
  padding: 0.5rem 0;
}

.spacing-row__bar { display: block; height: 16px; background: var(--accent); border-radius: 2px; }

.radius-grid { display: flex; flex-wrap: wrap; gap: 1.5rem; }
.radius-item { display: flex; flex-direction: column; align-items: center; gap: 0.25rem; }
.radius-item__box { width: 72px; height: 72px; background: var(--bg-secondary); border: 2px solid var(--accent); }

/* ============ Components ============ */
.checklist { list-style: none; }

.checklist__item {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  padding: 0.6rem 0;
  border-bottom: 1px solid var(--border);
}

.checklist__item .badge { margin: 0 0 0 auto; }
.checklist__item--done .checklist__mark { color: var(--success); }

/* ============ Cards ============ */
.card-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 1.25rem;
}

.template-card, .logo-card, .font-card {
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: var(--bg);
  box-shadow: var(--shadow);
}

.template-card__preview, .logo-card__preview {
  display: flex;
  align-items: center;
  justify-content: center;
  height: 160px;
  background: var(--bg-secondary);
  border-radius: var(--radius) var(--radius) 0 0;
  overflow: hidden;
}

.template-card__preview img { width: 100%; height: 100%; object-fit: cover; }
.logo-card__preview img { max-width: 80%; max-height: 70%; }
.logo-card__preview--dark { background: #1b2a4a; }
.logo-card__preview--dark .placeholder { color: var(--text-sidebar); }
.is-missing { background: repeating-linear-gradient(45deg, var(--bg-secondary), var(--bg-secondary) 8px, var(--border) 8px, var(--border) 16px); }

.template-card__body, .logo-card__body { padding: 1rem; }
.template-card__desc { color: var(--text-secondary); font-size: 0.9rem; margin-bottom: 0.75rem; }

.font-card { padding: 1rem; }
.font-card__sample { font-size: 3rem; line-height: 1.2; }
.font-card__styles { color: var(--text-secondary); font-size: 0.85rem; margin-bottom: 0.5rem; }

/* ============ Download menu ============ */
.download-menu { position: relative; display: inline-block; }

.download-menu__list {
  display: none;
  position: absolute;
  top: calc(100% + 4px);
  left: 0;
  min-width: 220px;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: var(--shadow-lg);
  z-index: 5;
}

.download-menu__list.show { display: block; }

.download-menu__list a {
  display: flex;
  justify-content: space-between;
  gap: 1rem;
  padding: 0.5rem 0.75rem;
  text-decoration: none;
  font-size: 0.85rem;
}

.download-menu__list a:hover { background: var(--bg-secondary); }
.download-menu__label { font-weight: 600; }
.download-menu__file { color: var(--text-muted); }

/* ============ Assets ============ */
.asset-list { list-style: none; }

.asset-list__item {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  padding: 0.75rem 0;
  border-bottom: 1px solid var(--border);
}

.asset-list__icon { font-size: 1.5rem; }
.asset-list__name { flex: 1; }

/* ============ Toast ============ */
.toast {
  position: fixed;
  bottom: 1.5rem;
  right: 1.5rem;
  max-width: 360px;
  padding: 0.75rem 1.25rem;
  border-radius: var(--radius);
  background: var(--text);
  color: #fff;
  box-shadow: var(--shadow-lg);
  opacity: 0;
  transform: translateY(10px);
  pointer-events: none;
  transition: opacity 0.2s ease, transform 0.2s ease;
  white-space: pre-line;
}

.toast.show { opacity: 1; transform: translateY(0); }
.toast--success { background: var(--success); }
.toast--error { background: var(--error); }

/* ============ Responsive ============ */
@media (max-width: 860px) {
  .sidebar { transform: translateX(-100%); }
  .sidebar.open { transform: translateX(0); }
  .sidebar-toggle { display: block; }
  .main { margin-left: 0; padding: 4rem 1.25rem 2rem; }
  .type-row { grid-template-columns: 1fr; gap: 0.5rem; }
}
`

const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var pages = document.querySelectorAll(".page");
  var sidebarLinks = document.querySelectorAll(".sidebar__link[data-page]");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebarOverlay");
  var toastEl = document.getElementById("toast");
  var toastMs = parseInt(body.getAttribute("data-toast-ms"), 10) || 3000;

  var knownPages = Array.prototype.map.call(pages, function(p) {
    return p.id.replace(/^page-/, "");
  });

  // ===== Router =====
  function resolveRoute(hash) {
    var id = (hash || "").replace(/^#/, "");
    return knownPages.indexOf(id) >= 0 ? id : "home";
  }

  function navigateTo(id) {
    pages.forEach(function(p) {
      p.classList.toggle("active", p.id === "page-" + id);
    });
    sidebarLinks.forEach(function(link) {
      link.classList.toggle("active", link.getAttribute("data-page") === id);
    });
    closeSidebar();
    setMenu(null);
  }

  window.addEventListener("hashchange", function() {
    navigateTo(resolveRoute(location.hash));
  });

  // ===== Mobile sidebar =====
  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("show");
  }

  function closeSidebar() {
    sidebar.classList.remove("open");
    overlay.classList.remove("show");
  }

  document.getElementById("sidebarToggle").addEventListener("click", toggleSidebar);
  overlay.addEventListener("click", closeSidebar);

  // ===== Toast =====
  // A newer message replaces the text; the earlier timer still fires.
  function showToast(message, kind) {
    toastEl.textContent = message;
    toastEl.className = "toast show toast--" + (kind || "success");
    setTimeout(function() {
      toastEl.classList.remove("show");
    }, toastMs);
  }

  // ===== Clipboard =====
  function copyText(text, label) {
    if (!navigator.clipboard) {
      console.error("clipboard API unavailable");
      showToast("Erreur de copie", "error");
      return;
    }
    navigator.clipboard.writeText(text).then(function() {
      showToast("Copié : " + (label || text), "success");
    }).catch(function(err) {
      console.error("copy failed", err);
      showToast("Erreur de copie", "error");
    });
  }

  // ===== Download menus =====
  // openMenu holds the toggle and list of the one menu that is open.
  var openMenu = null;

  function setMenu(toggle) {
    if (openMenu) {
      openMenu.list.classList.remove("show");
      openMenu.toggle.setAttribute("aria-expanded", "false");
      openMenu = null;
    }
    if (!toggle) return;
    var list = document.getElementById(toggle.getAttribute("data-menu-toggle"));
    if (!list) return;
    list.classList.add("show");
    toggle.setAttribute("aria-expanded", "true");
    openMenu = { toggle: toggle, list: list };
  }

  document.addEventListener("click", function(e) {
    var toggle = e.target.closest("[data-menu-toggle]");
    if (toggle) {
      e.preventDefault();
      setMenu(openMenu && openMenu.toggle === toggle ? null : toggle);
      return;
    }
    if (!e.target.closest(".download-menu")) {
      setMenu(null);
    }

    var copy = e.target.closest("[data-copy]");
    if (copy) {
      copyText(copy.getAttribute("data-copy"), copy.getAttribute("data-copy-label"));
    }
  });

  document.addEventListener("keydown", function(e) {
    if (e.key === "Escape") setMenu(null);
  });

  // ===== Live reload =====
  if (body.hasAttribute("data-live-reload") && window.WebSocket) {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + "/ws/reload");
    ws.onmessage = function(ev) {
      if (ev.data === "reload") location.reload();
    };
  }

  // ===== Startup =====
  navigateTo(resolveRoute(location.hash));
  if ((parseInt(body.getAttribute("data-load-errors"), 10) || 0) > 0) {
    showToast("Erreur de chargement des données", "error");
  }
})();
`
