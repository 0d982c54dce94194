package primitives

// defaultAmbient keeps unlit faces readable; the museum textures carry most of the look.
var defaultAmbient = [3]float32{0.55, 0.55, 0.58}

// spotPenumbra widens the outer cone relative to the cut-off angle for a soft edge.
const spotPenumbra = 1.15

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Two-sided: the room is seen from inside, so normals are flipped toward the viewer.
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointRange;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotRange;
uniform float spotCutoff;
uniform float spotOuter;
out vec4 finalColor;

float falloff(float dist, float range) {
  if (range <= 0.0) return 1.0;
  return clamp(1.0 - dist / range, 0.0, 1.0);
}

void main() {
  vec4 tex = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 V = normalize(viewPos - fragPosition);
  vec3 N = normalize(fragNormal);
  if (dot(N, V) < 0.0) N = -N;

  vec3 toPoint = pointPos - fragPosition;
  vec3 Lp = normalize(toPoint);
  vec3 point = pointColor * max(dot(N, Lp), 0.0) * falloff(length(toPoint), pointRange);

  vec3 toSpot = spotPos - fragPosition;
  vec3 Ls = normalize(toSpot);
  float theta = dot(-Ls, normalize(spotDir));
  float cone = smoothstep(spotOuter, spotCutoff, theta);
  vec3 spot = spotColor * max(dot(N, Ls), 0.0) * cone * falloff(length(toSpot), spotRange);

  vec3 lit = tex.rgb * (ambient + point + spot);
  finalColor = vec4(min(lit, vec3(1.0)), tex.a);
}
`
)
