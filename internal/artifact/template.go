package artifact

import "html/template"

// pageTemplate is the full self-contained artifact document. All data is
// interpolated inline; the emitted file has no server dependencies beyond
// the Leaflet CDN assets and basemap tiles.
var pageTemplate = template.Must(template.New("artifact").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <style>
        html, body { height: 100%; margin: 0; background-color: #1f2937; color: #f3f4f6;
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; }
        #map { position: absolute; top: 0; bottom: 0; left: 0; right: 420px; background-color: #111827; }
        #panel { position: absolute; top: 0; bottom: 0; right: 0; width: 420px; overflow-y: auto;
            background-color: #1f2937; border-left: 1px solid #374151; box-sizing: border-box; }
        #panel.hidden { display: none; }
        .close-button { float: right; margin: 8px; background: #374151; color: #f3f4f6;
            border: none; border-radius: 4px; padding: 4px 10px; cursor: pointer; }
        .close-button:hover { background: #4b5563; }
        .panel-header { padding: 16px; background-color: #283548; border-bottom: 1px solid #374151; }
        .panel-header h1 { font-size: 18px; margin: 0 0 4px 0; color: #f3f4f6; }
        .panel-header .subtitle { font-size: 13px; color: #9ca3af; }
        .district-note { margin-top: 10px; font-size: 11px; color: #9ca3af; }
        .panel-content { padding: 16px; }
        .welcome-message { color: #9ca3af; text-align: center; padding: 40px 16px; }
        .info-box { background-color: #283548; border: 1px solid #374151; border-radius: 6px;
            padding: 12px; margin-bottom: 12px; }
        .info-box h2 { font-size: 15px; margin: 0 0 8px 0; color: #f3f4f6; }
        .opportunity-value { display: flex; align-items: center; gap: 12px; margin-bottom: 8px; }
        .opportunity-value-number { font-size: 32px; font-weight: bold; color: #f3f4f6; }
        .opportunity-value-label { font-size: 11px; color: #9ca3af; }
        .opportunity-tier { display: inline-block; padding: 2px 10px; border-radius: 10px;
            background-color: #374151; font-size: 12px; margin-bottom: 8px; }
        .tier-less { color: #ef4444; }
        .tier-moderate { color: #f59e0b; }
        .tier-high { color: #10b981; }
        .tier-exceptional { color: #059669; }
        .geographic-info { background-color: #283548; border: 1px solid #374151; border-radius: 6px;
            padding: 12px; margin-bottom: 12px; }
        .geo-item { display: flex; justify-content: space-between; padding: 3px 0; font-size: 13px; }
        .geo-label { color: #9ca3af; }
        .geo-value { color: #f3f4f6; text-align: right; }
        h3 { font-size: 14px; color: #e5e7eb; margin: 16px 0 8px 0; }
        table { width: 100%; border-collapse: collapse; font-size: 12px; }
        td { padding: 5px; border-bottom: 1px solid #374151; color: #e5e7eb; }
        .rank-number { display: inline-block; width: 18px; height: 18px; line-height: 18px;
            text-align: center; background: #374151; color: #f3f4f6; border-radius: 50%; font-size: 11px; }
        .domain-section { font-size: 12px; margin-bottom: 8px; color: #e5e7eb; }
        .domain-section ul { margin: 4px 0 0 0; padding-left: 20px; color: #9ca3af; }
        .tab-container { border: 1px solid #374151; border-radius: 6px; overflow: hidden; }
        .tab-header { display: flex; flex-wrap: wrap; background-color: #1f2937;
            border-bottom: 1px solid #374151; }
        .tab-button { background: none; border: none; padding: 8px 10px; font-size: 11px;
            color: #9ca3af; cursor: pointer; border-bottom: 2px solid transparent; }
        .tab-button.active { color: #f3f4f6; border-bottom-color: #60a5fa; }
        .tab-content { display: none; padding: 12px; background-color: #283548; }
        .tab-content.active { display: block; }
        .variable-item, .demographic-item { display: flex; justify-content: space-between;
            align-items: center; padding: 8px 0; border-bottom: 1px solid #374151; font-size: 12px; }
        .variable-item:last-child, .demographic-item:last-child { border-bottom: none; }
        .variable-name { color: #e5e7eb; }
        .variable-value, .demographic-value { text-align: right; }
        .variable-value .value, .demographic-value .value { color: #f3f4f6; font-weight: bold; }
        .risk-direction { font-size: 11px; }
        .above-average { color: #10b981; }
        .below-average { color: #ef4444; }
        .near-average { color: #9ca3af; }
        .info { background-color: #283548; color: #f3f4f6; border: 1px solid #374151;
            border-radius: 6px; padding: 10px; font-size: 12px; box-shadow: 0 1px 5px rgba(0,0,0,0.4); }
        .info h4 { margin: 0 0 6px 0; font-size: 13px; color: #f3f4f6; }
        .legend-item, .district-filter-item { display: flex; align-items: center; gap: 6px;
            padding: 3px 4px; cursor: pointer; border: 1px solid transparent; border-radius: 4px; }
        .legend-item.active, .district-filter-item.active { border: 1px solid #60a5fa; }
        .legend-color { width: 16px; height: 16px; border: 1px solid #374151; }
        .district-filter-color { width: 10px; height: 10px; border-radius: 50%; background: #6b7280; }
        .legend-reset, .district-filter-reset { margin-top: 8px; width: 100%; background: #374151;
            color: #f3f4f6; border: none; border-radius: 4px; padding: 4px; cursor: pointer; }
        .legend-reset:hover, .district-filter-reset:hover { background: #4b5563; }
        .place-label { background: none; border: none; }
        .district-label { color: #e5e7eb; font-size: 12px; font-weight: bold; text-align: center;
            text-shadow: 0 0 4px #111827; pointer-events: none; }
    </style>
</head>
<body>
    <div id="map"></div>
    <div id="panel">
        <button class="close-button" onclick="document.getElementById('panel').classList.add('hidden')">X</button>
        <div class="panel-header">
            <h1>{{.Title}}</h1>
            <div class="subtitle">Census Tract Details</div>
            <div class="district-note">
                <p><strong>District Categorization:</strong> Census tracts are assigned to districts based on the proportion of area within each district. The primary district is the one with the highest proportion. Tracts marked with * span multiple districts and show the detailed percentage breakdown below.</p>
            </div>
        </div>
        <div class="panel-content" id="panel-content">
            <div class="welcome-message">
                Click on a census tract to view detailed information
            </div>
        </div>
    </div>

    <script>
        var map = L.map('map', {
            center: [{{.CenterLat}}, {{.CenterLng}}],
            zoom: 10,
            zoomControl: false
        });

        L.tileLayer('https://cartodb-basemaps-{s}.global.ssl.fastly.net/dark_all/{z}/{x}/{y}{r}.png', {
            attribution: '&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> &copy; <a href="https://carto.com/attributions">CARTO</a>',
            subdomains: 'abcd',
            maxZoom: 19
        }).addTo(map);

        L.control.zoom({position: 'topright'}).addTo(map);

        var areaRecords = {{.Records}};
        var thresholds = {{.Thresholds}};
        var domainIndicators = {{.DomainIndicators}};
        var indicatorNames = {{.IndicatorNames}};
        var jurisdictions = {{.Jurisdictions}};
        var placeLabels = {{.Labels}};
        var geoData = {{.Features}};

        var selectedLayer = null;
        var activeFilters = []; // selected score values
        var activeDistrictFilters = []; // selected jurisdiction names
        var currentActiveTab = 'socioeconomic';

        function tabId(domain) {
            return domain.toLowerCase().replace(/\s+/g, '-');
        }

        // YlGnBu color scheme: Light Yellow to Dark Blue
        function getColor(d) {
            return d > 7 ? '#08519c' :
                   d > 6 ? '#3182bd' :
                   d > 5 ? '#6baed6' :
                   d > 4 ? '#9ecae1' :
                   d > 3 ? '#c7e9b4' :
                   d > 2 ? '#edf8b1' :
                   d > 1 ? '#ffffcc' :
                           '#ffffe5';
        }

        function matchesAnyScoreRange(score, filters) {
            if (filters.length === 0) {
                return true;
            }
            return filters.some(function(value) {
                return Math.floor(score) === value;
            });
        }

        function matchesAnyDistrict(record, filters) {
            if (filters.length === 0) {
                return true;
            }
            return filters.some(function(value) {
                return record && record.jurisdiction &&
                       record.jurisdiction.names &&
                       record.jurisdiction.names.includes(value);
            });
        }

        function style(feature) {
            var score = feature.properties.score;
            var record = areaRecords[feature.properties.geoid];

            var baseStyle = {
                fillColor: getColor(score),
                weight: 1.5,
                opacity: 1,
                color: '#1f2937',
                fillOpacity: 0.85
            };

            if (activeFilters.length > 0 || activeDistrictFilters.length > 0) {
                if (!matchesAnyScoreRange(score, activeFilters) ||
                    !matchesAnyDistrict(record, activeDistrictFilters)) {
                    baseStyle.fillOpacity = 0.1;
                    baseStyle.opacity = 0.3;
                }
            }

            return baseStyle;
        }

        function highlightFeature(e) {
            var layer = e.target;
            layer.setStyle({
                weight: 3,
                color: '#f3f4f6',
                dashArray: '',
                fillOpacity: 0.9
            });
            if (!L.Browser.ie && !L.Browser.opera && !L.Browser.edge) {
                layer.bringToFront();
            }
            info.update(layer.feature.properties);
        }

        function resetHighlight(e) {
            if (selectedLayer !== e.target) {
                geojson.resetStyle(e.target);
            }
            info.update();
        }

        function getTierClass(tier) {
            if (tier.includes('Less')) return 'tier-less';
            if (tier.includes('Moderate')) return 'tier-moderate';
            if (tier.includes('High') && !tier.includes('Exceptional')) return 'tier-high';
            if (tier.includes('Exceptional')) return 'tier-exceptional';
            return '';
        }

        function restyleAll() {
            geojson.eachLayer(function(layer) {
                layer.setStyle(style(layer.feature));
            });
            updateDistrictLabels();
        }

        function toggleScoreFilter(scoreValue, legendItem) {
            var idx = activeFilters.indexOf(scoreValue);
            if (idx !== -1) {
                activeFilters.splice(idx, 1);
                legendItem.classList.remove('active');
            } else {
                activeFilters.push(scoreValue);
                legendItem.classList.add('active');
            }
            restyleAll();
        }

        function toggleDistrictFilter(districtValue, filterItem) {
            var idx = activeDistrictFilters.indexOf(districtValue);
            if (idx !== -1) {
                activeDistrictFilters.splice(idx, 1);
                filterItem.classList.remove('active');
            } else {
                activeDistrictFilters.push(districtValue);
                filterItem.classList.add('active');
            }
            restyleAll();
        }

        function updateDistrictLabels() {
            var districtLabels = document.querySelectorAll('.district-label');
            districtLabels.forEach(function(label) {
                if (activeDistrictFilters.length === 0) {
                    label.style.display = 'block';
                    return;
                }
                var isActive = activeDistrictFilters.indexOf(label.textContent) !== -1;
                label.style.display = isActive ? 'block' : 'none';
            });
        }

        function resetAllFilters() {
            activeFilters = [];
            activeDistrictFilters = [];
            document.querySelectorAll('.legend-item').forEach(function(item) {
                item.classList.remove('active');
            });
            document.querySelectorAll('.district-filter-item').forEach(function(item) {
                item.classList.remove('active');
            });
            restyleAll();
        }

        function resetDistrictFilters() {
            activeDistrictFilters = [];
            document.querySelectorAll('.district-filter-item').forEach(function(item) {
                item.classList.remove('active');
            });
            restyleAll();
        }

        function getOpportunityDirection(value, indicator) {
            var numValue = parseFloat(value);
            if (isNaN(numValue)) {
                return { arrow: '→', text: 'Average', class: 'near-average' };
            }
            var threshold = thresholds[indicator];
            if (!threshold) {
                return { arrow: '→', text: 'Average', class: 'near-average' };
            }
            var median = (threshold.p33 + threshold.p67) / 2;
            if (numValue > median) {
                return { arrow: '↑', text: 'Above Average', class: 'above-average' };
            }
            return { arrow: '↓', text: 'Below Average', class: 'below-average' };
        }

        function showTab(tabName) {
            document.querySelectorAll('.tab-content').forEach(function(content) {
                content.classList.remove('active');
            });
            document.querySelectorAll('.tab-button').forEach(function(button) {
                button.classList.remove('active');
            });
            var content = document.getElementById(tabName + '-content');
            var button = document.getElementById(tabName + '-button');
            if (content) content.classList.add('active');
            if (button) button.classList.add('active');
            currentActiveTab = tabName;
        }

        function formatIndicatorValue(indicator, value) {
            var numValue = parseFloat(value);
            if (isNaN(numValue)) {
                return value;
            }
            var isPercentage = (indicator.includes('PCT') || indicator.includes('_P') ||
                               indicator.includes('Percent_') || indicator.includes('percent_') ||
                               indicator.includes('Work_') || indicator.includes('With_') ||
                               indicator.includes('Owner_occupied') || indicator.includes('House_Vacant') ||
                               indicator.includes('Prop_')) &&
                               !indicator.includes('Calls') && !indicator.includes('EMS') &&
                               !indicator.includes('Medical') && !indicator.includes('Violence') &&
                               !indicator.includes('Opioid') && !indicator.includes('Fires') &&
                               !indicator.includes('Homeless') && !indicator.includes('VMC') &&
                               !indicator.includes('SFPC') && !indicator.includes('Vegetation') &&
                               !indicator.includes('LIFEEXPPCT') && !indicator.includes('PM25') &&
                               !indicator.includes('OZONE') && !indicator.includes('NO2') &&
                               !indicator.includes('PTRAF') && !indicator.includes('Total_Population') &&
                               !indicator.includes('Median_Age');

            if (isPercentage && numValue < 1) {
                return Math.round(numValue * 100) + '%';
            }
            if (isPercentage) {
                return Math.round(numValue) + '%';
            }
            if (indicator === 'Median_Age') {
                return Math.round(numValue) + ' years';
            }
            if (indicator.includes('Ratio')) {
                return numValue.toFixed(2);
            }
            return Math.round(numValue * 100) / 100;
        }

        function createVariableList(properties, domain) {
            var html = '';
            var indicators = domainIndicators[domain];

            if (!indicators || indicators.length === 0) {
                return '<div class="variable-item"><div class="variable-name">No variables available for this domain</div></div>';
            }

            indicators.forEach(function(indicator) {
                var value = properties[indicator];
                var displayName = indicatorNames[indicator] || indicator;
                var displayValue = 'N/A';
                if (value !== null && value !== undefined && value !== '') {
                    displayValue = formatIndicatorValue(indicator, value);
                }

                if (domain === 'Demographics') {
                    html += '<div class="demographic-item">' +
                            '<div class="variable-name">' + displayName + '</div>' +
                            '<div class="demographic-value"><span class="value">' + displayValue + '</span></div>' +
                            '</div>';
                } else {
                    var dir = getOpportunityDirection(value, indicator);
                    html += '<div class="variable-item">' +
                            '<div class="variable-name">' + displayName + '</div>' +
                            '<div class="variable-value">' +
                            '<span class="value">' + displayValue + '</span>' +
                            '<div class="risk-direction">' +
                            '<span class="risk-arrow ' + dir.class + '">' + dir.arrow + '</span> ' +
                            '<span class="risk-text ' + dir.class + '">' + dir.text + '</span>' +
                            '</div></div></div>';
                }
            });

            return html;
        }

        function clickFeature(e) {
            var properties = e.target.feature.properties;
            var record = areaRecords[properties.geoid];
            if (!record) {
                return;
            }

            if (selectedLayer) {
                geojson.resetStyle(selectedLayer);
            }

            selectedLayer = e.target;
            selectedLayer.setStyle({
                weight: 4,
                color: '#60a5fa',
                dashArray: '',
                fillOpacity: 0.9
            });

            if (!L.Browser.ie && !L.Browser.opera && !L.Browser.edge) {
                selectedLayer.bringToFront();
            }

            document.getElementById('panel').classList.remove('hidden');
            var panelContent = document.getElementById('panel-content');

            var html = '<div class="info-box">' +
                '<h2>Census Tract: ' + record.displayId + '</h2>' +
                '<div class="opportunity-value">' +
                '<div class="opportunity-value-number">' + record.score.toFixed(1) + '</div>' +
                '<div class="opportunity-value-label">Service Opportunity Score<br/>(1-8 scale, higher = more opportunity)</div>' +
                '</div>' +
                '<div class="opportunity-tier ' + getTierClass(record.tier) + '">' + record.tier + '</div>' +
                '<p><strong>Primary Contributing Factor:</strong> ' + record.topDomain + '</p>' +
                '</div>' +
                '<div class="geographic-info">' +
                '<div class="geo-item"><span class="geo-label">Census Tract:</span>' +
                '<span class="geo-value">' + record.geoid + '</span></div>' +
                '<div class="geo-item"><span class="geo-label">' +
                (record.jurisdiction.multi ? 'Primary District:' : 'District:') + '</span>' +
                '<span class="geo-value">' + record.jurisdiction.primary + '</span></div>';

            if (record.jurisdiction.multi && record.jurisdiction.names && record.jurisdiction.names.length > 1) {
                html += '<div class="geo-item"><span class="geo-label">District Breakdown:</span>' +
                        '<span class="geo-value">';
                record.jurisdiction.names.forEach(function(name, index) {
                    var proportion = record.jurisdiction.proportions[name];
                    if (index > 0) html += '<br/>';
                    html += name + ': ' + proportion.toFixed(2) + '%';
                });
                html += '</span></div>';
            }

            html += '<div class="geo-item"><span class="geo-label">Neighborhood:</span>' +
                    '<span class="geo-value">' + record.neighborhood + '</span></div>' +
                    '<div class="geo-item"><span class="geo-label">Primary Fire Station:</span>' +
                    '<span class="geo-value">' + record.firstDue + '</span></div>' +
                    '</div>' +
                    '<h3>Impact on Opportunity Score (by Category)</h3><table>';

            // Static 3x2 ranking table: ranks 1-3 left, 4-6 right.
            var domainsByRank = [];
            Object.keys(record.domainRanks).forEach(function(domain) {
                domainsByRank[record.domainRanks[domain] - 1] = domain;
            });
            for (var i = 0; i < 6; i++) {
                if (!domainsByRank[i]) {
                    domainsByRank[i] = 'N/A';
                }
            }
            for (var i = 0; i < 3; i++) {
                html += '<tr>' +
                    '<td><span class="rank-number">' + (i + 1) + '</span> ' + domainsByRank[i] + '</td>' +
                    '<td><span class="rank-number">' + (i + 4) + '</span> ' + domainsByRank[i + 3] + '</td>' +
                    '</tr>';
            }

            html += '</table><h3>Strongest Opportunity Indicators</h3>';

            Object.keys(record.domainTopIndicators).forEach(function(domain) {
                var names = record.domainTopIndicators[domain];
                html += '<div class="domain-section"><strong>' + domain + ':</strong><ul>';
                names.forEach(function(name) {
                    html += '<li>' + name + '</li>';
                });
                html += '</ul></div>';
            });

            html += '<h3>All Domain Variables</h3><div class="tab-container"><div class="tab-header">';
            Object.keys(domainIndicators).forEach(function(domain) {
                var id = tabId(domain);
                html += '<button id="' + id + '-button" class="tab-button" onclick="showTab(\'' + id + '\')">' + domain + '</button>';
            });
            html += '</div>';
            Object.keys(domainIndicators).forEach(function(domain) {
                html += '<div id="' + tabId(domain) + '-content" class="tab-content">' +
                        createVariableList(properties, domain) + '</div>';
            });
            html += '</div>';

            panelContent.innerHTML = html;

            // Restore the previously selected tab instead of resetting it.
            showTab(currentActiveTab);

            var center = e.target.getBounds().getCenter();
            map.panTo(center, {
                animate: true,
                duration: 0.8
            });
        }

        function onEachFeature(feature, layer) {
            layer.on({
                mouseover: highlightFeature,
                mouseout: resetHighlight,
                click: clickFeature
            });
        }

        var geojson = L.geoJSON(geoData, {
            style: style,
            onEachFeature: onEachFeature
        }).addTo(map);

        var info = L.control({position: 'topright'});

        info.onAdd = function (map) {
            this._div = L.DomUtil.create('div', 'info');
            this.update();
            return this._div;
        };

        info.update = function (props) {
            this._div.innerHTML = '<h4>{{.Title}}</h4>' + (props ?
                '<b>Census Tract: ' + props.geoid + '</b><br />' +
                'Opportunity Index: ' + (props.score ? props.score.toFixed(1) : 'N/A') + '/8'
                : 'Hover over a census tract');
        };

        info.addTo(map);

        var districtFilter = L.control({position: 'bottomleft'});

        districtFilter.onAdd = function (map) {
            var div = L.DomUtil.create('div', 'info district-filter');

            div.innerHTML = '<h4>District Filter</h4>' +
                            '<div style="margin-bottom:8px;font-size:11px;color:#9ca3af;">Click to select multiple districts:</div>';

            jurisdictions.forEach(function(district) {
                var filterItem = L.DomUtil.create('div', 'district-filter-item');
                filterItem.innerHTML =
                    '<div class="district-filter-color"></div>' +
                    '<div class="district-filter-text">' + district + '</div>';

                filterItem.onclick = function() {
                    toggleDistrictFilter(district, filterItem);
                };

                div.appendChild(filterItem);
            });

            var resetButton = L.DomUtil.create('button', 'district-filter-reset');
            resetButton.innerHTML = 'Show All';
            resetButton.onclick = resetDistrictFilters;
            div.appendChild(resetButton);

            return div;
        };

        districtFilter.addTo(map);

        var legend = L.control({position: 'bottomleft'});

        legend.onAdd = function (map) {
            var div = L.DomUtil.create('div', 'info legend');

            div.innerHTML = '<h4>Service Opportunity Score</h4>' +
                            '<div style="text-align:center;margin-bottom:8px;font-size:12px;">(higher = more opportunity)</div>' +
                            '<div style="margin-bottom:8px;font-size:11px;color:#9ca3af;">Click to select multiple scores:</div>';

            var grades = [1, 2, 3, 4, 5, 6, 7, 8];

            grades.forEach(function(grade) {
                var legendItem = L.DomUtil.create('div', 'legend-item');
                legendItem.innerHTML =
                    '<div class="legend-color" style="background:' + getColor(grade) + '"></div>' +
                    '<div class="legend-text">' + grade + '</div>';

                legendItem.onclick = function() {
                    toggleScoreFilter(grade, legendItem);
                };

                div.appendChild(legendItem);
            });

            var resetButton = L.DomUtil.create('button', 'legend-reset');
            resetButton.innerHTML = 'Show All';
            resetButton.onclick = resetAllFilters;
            div.appendChild(resetButton);

            return div;
        };

        legend.addTo(map);

        var labelLayer = L.layerGroup();

        function createLabels() {
            placeLabels.forEach(function(place) {
                var icon = L.divIcon({
                    className: 'place-label',
                    html: '<div class="district-label">' + place.name + '</div>',
                    iconSize: [130, 38],
                    iconAnchor: [65, 19]
                });

                L.marker([place.lat, place.lng], {
                    icon: icon,
                    interactive: false,
                    keyboard: false
                }).addTo(labelLayer);
            });

            labelLayer.addTo(map);
        }

        createLabels();
        updateDistrictLabels();
    </script>
</body>
</html>
`
