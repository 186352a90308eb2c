// Package legend models the chart legend: the box listing a symbol and a
// name for each series or point, plus its title, paging navigation, bubble
// legend and accessibility settings.
package legend
