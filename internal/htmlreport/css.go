package htmlreport

// css is embedded verbatim into every report so the document needs no
// external stylesheet.
const css = `
body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    max-width: 1100px;
    margin: 0 auto;
    padding: 20px 30px;
    color: #000337;
    background: #FAFBFF;
    line-height: 1.5;
}
h1 { color: #7BA7CC; border-bottom: 2px solid #7BA7CC; padding-bottom: 8px; }
h2 { color: #000337; margin-top: 30px; border-left: 4px solid #FF702A; padding-left: 12px; }
h3 { color: #000337; margin-top: 20px; border-left: 3px solid #FFA929; padding-left: 10px; }
.header-info {
    background: #E8F0FE;
    padding: 12px 18px;
    border-radius: 6px;
    margin-bottom: 20px;
    font-size: 0.95em;
    border-left: 4px solid #2C82FD;
}
.header-info span { margin-right: 30px; }
.metrics {
    display: flex;
    gap: 16px;
    flex-wrap: wrap;
    margin: 16px 0;
}
.metric {
    background: white;
    border: 1px solid #D0DDEF;
    border-radius: 8px;
    padding: 14px 20px;
    min-width: 140px;
    text-align: center;
    border-top: 3px solid #2C82FD;
}
.metric .value { font-size: 1.8em; font-weight: 700; color: #000337; }
.metric .label { font-size: 0.85em; color: #555; margin-top: 2px; }
details {
    background: white;
    border: 1px solid #D0DDEF;
    border-radius: 6px;
    margin: 10px 0;
    padding: 0;
}
details > summary {
    padding: 12px 16px;
    cursor: pointer;
    font-weight: 600;
    font-size: 1.05em;
    background: #E8F0FE;
    color: #000337;
    border-radius: 6px;
    list-style: none;
}
details > summary::-webkit-details-marker { display: none; }
details > summary::before { content: "\25B6  "; font-size: 0.8em; color: #2C82FD; }
details[open] > summary::before { content: "\25BC  "; color: #2C82FD; }
details[open] > summary { border-bottom: 1px solid #D0DDEF; border-radius: 6px 6px 0 0; }
details > .content { padding: 12px 16px; }
.tag-row { margin: 8px 0; padding: 6px 0; border-bottom: 1px solid #E8F0FE; }
.tag-header { display: flex; justify-content: space-between; align-items: center; }
.tag-label { font-weight: 600; font-family: monospace; font-size: 0.95em; color: #000337; }
.tag-vr { color: #888; font-family: monospace; font-size: 0.85em; margin-left: 8px; }
.status-clean {
    display: inline-block;
    background: #E0F2E9;
    color: #155724;
    padding: 2px 10px;
    border-radius: 12px;
    font-size: 0.8em;
    font-weight: 600;
}
.status-review {
    display: inline-block;
    background: #FFF0D9;
    color: #7A4D00;
    padding: 2px 10px;
    border-radius: 12px;
    font-size: 0.8em;
    font-weight: 600;
    border: 1px solid #FFA929;
}
.values { margin: 4px 0 0 20px; font-family: monospace; font-size: 0.9em; color: #333; max-height: 200px; overflow-y: auto; }
.values div { padding: 1px 0; }
.table-scroll {
    max-height: 400px;
    overflow-y: auto;
    margin: 10px 0;
    border: 1px solid #D0DDEF;
    border-radius: 6px;
}
table {
    border-collapse: collapse;
    width: 100%;
    margin: 0;
    font-size: 0.9em;
}
.table-scroll table th {
    position: sticky;
    top: 0;
    z-index: 1;
}
th, td {
    border: 1px solid #D0DDEF;
    padding: 8px 12px;
    text-align: left;
}
th { background: #E8F0FE; font-weight: 600; color: #000337; }
tr:nth-child(even) { background: #F5F8FF; }
.section-divider { border-top: 2px solid #D0DDEF; margin: 30px 0; }
.warning-box {
    background: #FFF0D9;
    border: 1px solid #FFA929;
    border-radius: 6px;
    padding: 10px 14px;
    margin: 10px 0;
    font-size: 0.9em;
}
.success-box {
    background: #E0F2E9;
    border: 1px solid #28a745;
    border-radius: 6px;
    padding: 10px 14px;
    margin: 10px 0;
    font-size: 0.9em;
}
.info-box {
    background: #E8F0FE;
    border: 1px solid #2C82FD;
    border-radius: 6px;
    padding: 10px 14px;
    margin: 10px 0;
    font-size: 0.9em;
}
`
