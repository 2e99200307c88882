package render

import (
	"strings"
	"text/template"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
)

// maxInitFrames bounds how long the script polls for its root element
// once the document has finished loading.
const maxInitFrames = 600

type scriptData struct {
	ID        string
	Functions string
	MaxFrames int
}

var scriptTemplate = template.Must(template.New("script").Parse(`<script>
(function() {
    var WIDGET_ID = '{{js .ID}}';
{{.Functions}}
    function setupPromoWidget(widget) {
        if (widget.getAttribute('data-promo-ready') === 'true') return;
        widget.setAttribute('data-promo-ready', 'true');
        var filterContainer = widget.querySelector('.promo-logo-filter-container');
        var cards = widget.querySelectorAll('.promo-product-card');
        var emptyMessage = widget.querySelector('.promo-empty-message');

        function applyFilter(type, value) {
            var now = new Date();
            var anyVisible = false;
            for (var i = 0; i < cards.length; i++) {
                var show = isCardVisible(type, value, cards[i], now);
                cards[i].style.display = show ? 'flex' : 'none';
                if (show) anyVisible = true;
            }
            if (emptyMessage) emptyMessage.hidden = anyVisible;
        }

        function selectItem(item) {
            var items = filterContainer.querySelectorAll('.promo-filter-item');
            for (var i = 0; i < items.length; i++) {
                items[i].classList.remove('active');
                items[i].setAttribute('aria-selected', 'false');
            }
            item.classList.add('active');
            item.setAttribute('aria-selected', 'true');
            applyFilter(item.getAttribute('data-filter'), item.getAttribute('data-value'));
        }

        if (filterContainer) {
            filterContainer.addEventListener('click', function(e) {
                var item = e.target.closest('.promo-filter-item');
                if (item && filterContainer.contains(item)) selectItem(item);
            });
            filterContainer.addEventListener('keydown', function(e) {
                if (e.key !== 'Enter' && e.key !== ' ') return;
                var item = e.target.closest('.promo-filter-item');
                if (!item || !filterContainer.contains(item)) return;
                e.preventDefault();
                selectItem(item);
            });
            var initial = filterContainer.querySelector('.promo-filter-item.active') || filterContainer.querySelector('[data-filter="all"]');
            if (initial) {
                selectItem(initial);
            } else {
                applyFilter('all', null);
            }
        } else {
            applyFilter('all', null);
        }

        widget.addEventListener('click', function(e) {
            var toggle = e.target.closest('.promo-description-toggle');
            if (!toggle || !widget.contains(toggle)) return;
            e.preventDefault();
            var description = document.getElementById(toggle.getAttribute('data-target'));
            if (!description) return;
            var expanded = description.classList.toggle('expanded');
            toggle.textContent = expanded ? 'See Less' : 'See More';
            toggle.setAttribute('aria-expanded', expanded ? 'true' : 'false');
        });
    }

    var schedule = window.requestAnimationFrame
        ? function(fn) { window.requestAnimationFrame(fn); }
        : function(fn) { setTimeout(fn, 16); };
    var frames = 0;
    function init() {
        var widget = document.getElementById(WIDGET_ID);
        if (widget) {
            setupPromoWidget(widget);
            return;
        }
        if (document.readyState !== 'loading' && ++frames > {{.MaxFrames}}) return;
        schedule(init);
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', init);
    } else {
        init();
    }
})();
</script>`))

// renderScript returns the behavior script bound to the widget with id.
// Its filter logic is generated from the same tables as flash.Visible.
func renderScript(id string) (string, error) {
	data := scriptData{
		ID:        id,
		Functions: indent(flash.ActiveJS()+flash.VisibleJS(), "    "),
		MaxFrames: maxInitFrames,
	}
	var b strings.Builder
	if err := scriptTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
