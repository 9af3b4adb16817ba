// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph, so generated bipartite graphs can be fed to
// gonum's traversal, flow and path algorithms.
//
// Vertex ids map one-to-one onto gonum node ids. Partition labels are not
// carried by gonum graphs; FromGonum takes the side sizes explicitly.
package converters
