package site

// pageTemplate is the Go html/template for the tabbed page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="generator" content="derelict">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <main class="page">
    <header class="page-header">
      <h1 class="page-title">{{.Title}}</h1>
      {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
    </header>
    <nav class="tabs" role="tablist" aria-label="Sections">
      {{- range $i, $s := .Sections}}
      <a class="tab{{if eq $i 0}} active{{end}}" role="tab" id="tab-{{$s.ID}}" href="#{{$s.ID}}" data-tab="{{$s.ID}}" aria-controls="panel-{{$s.ID}}" aria-selected="{{if eq $i 0}}true{{else}}false{{end}}">{{$s.Title}}</a>
      {{- end}}
    </nav>
    {{- range $i, $s := .Sections}}
    <section class="tab-panel{{if eq $i 0}} active{{end}}" role="tabpanel" id="panel-{{$s.ID}}" aria-labelledby="tab-{{$s.ID}}">
      {{$s.Body}}
    </section>
    {{- end}}
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet for the page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #31333f;
  --text-muted: #808495;
  --border: #e6eaf1;
  --accent: #ff4b4b;
  --link: #0068c9;
  --code-bg: #f0f2f6;
  --content-max-width: 860px;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #0e1117;
    --bg-secondary: #161a23;
    --text: #fafafa;
    --text-muted: #a3a8b8;
    --border: #31333f;
    --link: #58a6ff;
    --code-bg: #161a23;
  }
}

*, *::before, *::after {
  box-sizing: border-box;
}

body {
  margin: 0;
  font-family: "Source Sans Pro", -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

.page {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 3rem 1.5rem 5rem;
}

.page-title {
  font-size: 2.75rem;
  margin: 0 0 0.5rem;
}

.tagline {
  margin: 0 0 1.5rem;
}

a {
  color: var(--link);
}

/* ============ Tabs ============ */
.tabs {
  display: flex;
  flex-wrap: wrap;
  gap: 1.5rem;
  border-bottom: 1px solid var(--border);
  margin-bottom: 1.5rem;
}

.tab {
  padding: 0.5rem 0;
  color: var(--text);
  text-decoration: none;
  border-bottom: 2px solid transparent;
  margin-bottom: -1px;
}

.tab:hover {
  color: var(--accent);
}

.tab.active {
  color: var(--accent);
  border-bottom-color: var(--accent);
}

/* Without scripting every panel stays visible. */
.js .tab-panel {
  display: none;
}

.js .tab-panel.active {
  display: block;
}

.tab-panel + .tab-panel {
  border-top: 1px solid var(--border);
}

.js .tab-panel + .tab-panel {
  border-top: none;
}

/* ============ Blocks ============ */
.tab-panel h2 {
  font-size: 2rem;
  margin: 2rem 0 1rem;
}

.tab-panel h3 {
  font-size: 1.5rem;
  margin: 1.75rem 0 0.75rem;
}

.tab-panel h4 {
  font-size: 1.2rem;
  margin: 1.5rem 0 0.5rem;
}

.tab-panel code {
  background: var(--code-bg);
  padding: 0.1em 0.3em;
  border-radius: 4px;
  font-size: 0.9em;
}

.tab-panel pre {
  background: var(--code-bg);
  padding: 1rem;
  border-radius: 6px;
  overflow-x: auto;
}

.tab-panel pre code {
  background: none;
  padding: 0;
}

.caption {
  color: var(--text-muted);
  font-size: 0.85rem;
}

.link-block {
  font-weight: 600;
}

hr {
  border: none;
  border-top: 1px solid var(--border);
  margin: 2rem 0;
}

/* ============ Charts ============ */
.chart {
  margin: 1.5rem 0;
}

.chart svg {
  display: block;
  max-width: 100%;
  height: auto;
}

.chart figcaption {
  color: var(--text-muted);
  font-size: 0.9rem;
  margin-top: 0.5rem;
}
`

// jsContent switches tabs on click and follows #tab-id links.
const jsContent = `(function() {
  var root = document.documentElement;
  root.classList.add("js");

  var tabs = document.querySelectorAll(".tab");
  var panels = document.querySelectorAll(".tab-panel");

  function select(id) {
    var found = false;
    tabs.forEach(function(tab) {
      var on = tab.getAttribute("data-tab") === id;
      tab.classList.toggle("active", on);
      tab.setAttribute("aria-selected", on ? "true" : "false");
      if (on) { found = true; }
    });
    if (!found) { return false; }
    panels.forEach(function(panel) {
      panel.classList.toggle("active", panel.id === "panel-" + id);
    });
    return true;
  }

  tabs.forEach(function(tab) {
    tab.addEventListener("click", function(e) {
      e.preventDefault();
      var id = tab.getAttribute("data-tab");
      if (select(id) && history.replaceState) {
        history.replaceState(null, "", "#" + id);
      }
    });
  });

  function fromHash() {
    var id = window.location.hash.replace(/^#/, "");
    if (id) { select(id); }
  }

  window.addEventListener("hashchange", fromHash);
  fromHash();
})();
`
