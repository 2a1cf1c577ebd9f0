// Package surface stores one value per point of a k-skeleton, face by face.
//
// What:
//
//   - Surface[T] owns one dense plane per face, sized side^free, keyed by
//     skeleton.FaceKey. Values are addressed by skeleton.Coord.
//   - All planes share one backing slice laid out in skeleton.Meta.Faces
//     order, each plane in dense-index order. Data exposes it, so an
//     adjacency.Cache flat index addresses Data directly.
//
// Why:
//
//   - Storage is Σ side^free over faces, never side^N.
//
// Errors:
//
//   - ErrUnknownFace, ErrBadIndex: raised by panic from At, Set and Ref when
//     the coordinate does not belong to the skeleton the Surface was built
//     from. Such a coordinate is a programming error, not a runtime condition.
package surface
